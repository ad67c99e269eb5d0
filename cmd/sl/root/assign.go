package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/ui"
)

func newAssignCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "assign <staff_id>",
		Short: "Put a staff member to work on the active project",
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

			next, err := svc.Assign(ctx, id)
			if err != nil {
				return err
			}
			for _, s := range next.HiredStaff {
				if s.ID == id {
					fmt.Fprintf(cmd.OutOrStdout(), "%s %s is now on %s\n",
						ui.Good.Render(ui.IconStaff+" Assigned"), ui.H2.Render(s.Name),
						ui.H2.Render(next.ActiveProject.Title))
					break
				}
			}
			return nil
		},
	}

	return cmd
}
