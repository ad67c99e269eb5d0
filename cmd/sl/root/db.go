package root

import (
	"context"
	"database/sql"

	"studioline/internal/config"
	"studioline/internal/engine"
	"studioline/internal/logging"
	"studioline/internal/storage"
)

// resolveOptions merges flags over the TOML config. Flags win.
func resolveOptions() (dbPath string, opts []engine.Option, err error) {
	cfgPath := flagConfig
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.LoadConfig(cfgPath)
	if err != nil {
		return "", nil, err
	}

	dbPath = config.DefaultDBPath()
	if cfg.Game.DBPath != nil {
		dbPath = *cfg.Game.DBPath
	}
	if flagDBPath != "" {
		dbPath = flagDBPath
	}

	save := ""
	if cfg.Game.Save != nil {
		save = *cfg.Game.Save
	}
	if flagSave != "" {
		save = flagSave
	}
	if save != "" {
		opts = append(opts, engine.WithSave(save))
	}

	seed := int64(0)
	if cfg.Game.Seed != nil {
		seed = *cfg.Game.Seed
	}
	if flagSeed != 0 {
		seed = flagSeed
	}
	if seed != 0 {
		opts = append(opts, engine.WithSeed(seed))
	}

	offers, candidates := 0, 0
	if cfg.Game.OfferPool != nil {
		offers = *cfg.Game.OfferPool
	}
	if cfg.Game.CandidatePool != nil {
		candidates = *cfg.Game.CandidatePool
	}
	if offers > 0 || candidates > 0 {
		opts = append(opts, engine.WithPoolSizes(offers, candidates))
	}

	if log, lerr := logging.New(config.DefaultLogPath()); lerr == nil {
		opts = append(opts, engine.WithLogger(log))
	}
	return dbPath, opts, nil
}

func openDB(ctx context.Context) (*sql.DB, []engine.Option, func(), error) {
	path, opts, err := resolveOptions()
	if err != nil {
		return nil, nil, nil, err
	}
	db, err := storage.Open(ctx, path)
	if err != nil {
		return nil, nil, nil, err
	}
	cleanup := func() {
		_ = db.Close()
	}
	return db, opts, cleanup, nil
}

func openService(ctx context.Context) (*engine.Service, func(), error) {
	db, opts, cleanup, err := openDB(ctx)
	if err != nil {
		return nil, nil, err
	}
	return engine.NewService(db, opts...), cleanup, nil
}
