package root

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newAcceptCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "accept <project_id>",
		Short: "Accept a project offer",
		Args: func(cmd *cobra.Command, args []string) error {
			if len(args) != 1 {
				return errors.New("project_id is required")
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
			id, err := resolveProjectID(state.AvailableProjects, args[0])
			if err != nil {
				return err
			}

			next, err := svc.Accept(ctx, id)
			if err != nil {
				return err
			}
			p := next.ActiveProject
			fmt.Fprintf(cmd.OutOrStdout(), "%s %s — %d stages ahead. Start with %s\n",
				ui.Good.Render(ui.IconDisc+" Accepted"), ui.H2.Render(p.Title),
				len(p.Stages), ui.Key.Render("sl work"))
			return nil
		},
	}

	return cmd
}

// resolveProjectID matches a full id or an unambiguous prefix.
func resolveProjectID(offers []game.Project, arg string) (string, error) {
	var matches []string
	for _, p := range offers {
		if p.ID == arg {
			return p.ID, nil
		}
		if strings.HasPrefix(p.ID, arg) {
			matches = append(matches, p.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no offer matches %q; see 'sl projects'", arg)
	default:
		return "", fmt.Errorf("%q matches %d offers; use more characters", arg, len(matches))
	}
}
