package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newTrainCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "train <staff_id>",
		Short: "Enroll a staff member in training",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("staff_id is required")
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := svc.Snapshot(ctx)
			if err != nil {
				return err
			}
			id, err := resolveStaffID(state.HiredStaff, args[0])
			if err != nil {
				return err
			}

			next, err := svc.Train(ctx, id)
			if err != nil {
				return err
			}
			for _, s := range next.HiredStaff {
				if s.ID == id {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s enrolled (fee %s, balance %s)\n",
						ui.Good.Render(ui.IconSparkle+" Training"), ui.H2.Render(s.Name),
						ui.Money(game.TrainingFee), ui.Money(next.Money))
					break
				}
			}
			return nil
		},
	}

	return cmd
}
