package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/ui"
)

func newRestCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rest <staff_id>",
		Short: "Send a staff member to rest",
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

			next, err := svc.Rest(ctx, id)
			if err != nil {
				return err
			}
			for _, s := range next.HiredStaff {
				if s.ID == id {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s is resting (energy %s)\n",
						ui.Good.Render(ui.IconSleep+" Resting"), ui.H2.Render(s.Name),
						ui.EnergyText(s.Energy))
					break
				}
			}
			return nil
		},
	}

	return cmd
}
