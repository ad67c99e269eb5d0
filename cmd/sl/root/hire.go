package root

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newHireCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hire [candidate_id]",
		Short: "List candidates, or hire one",
		Args:  cobra.MaximumNArgs(1),
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
			out := cmd.OutOrStdout()

			if len(args) == 0 {
				fmt.Fprintln(out, ui.Heading(ui.IconStaff, "Candidates"))
				if len(state.Candidates) == 0 {
					fmt.Fprintln(out, ui.Muted.Render("(no candidates right now — sleep and check again)"))
					return nil
				}
				for _, c := range state.Candidates {
					affinity := ""
					if c.GenreAffinity != nil {
						affinity = ui.Muted.Render(fmt.Sprintf(" [%s +%d%%]", c.GenreAffinity.Genre, c.GenreAffinity.BonusPercent))
					}
					fmt.Fprintf(out, "%s %s — %s%s\n",
						ui.Key.Render(c.ID[:8]), ui.H2.Render(c.Name), c.Role, affinity)
					fmt.Fprintf(out, "  cre %d / tech %d / spd %d | salary %s/wk, signing fee %s\n",
						c.PrimaryStats.Creativity, c.PrimaryStats.Technical, c.PrimaryStats.Speed,
						ui.Money(c.Salary), ui.Money(c.Salary*game.SigningFeeMultiple))
				}
				fmt.Fprintln(out, ui.Muted.Render("hire with 'sl hire <id>'"))
				return nil
			}

			id, err := resolveStaffID(state.Candidates, args[0])
			if err != nil {
				return err
			}
			next, err := svc.Hire(ctx, id)
			if err != nil {
				return err
			}
			for _, s := range next.HiredStaff {
				if s.ID != id {
					continue
				}
				fmt.Fprintf(out, "%s %s joins the studio. Balance %s\n",
					ui.Good.Render(ui.IconStaff+" Hired"), ui.H2.Render(s.Name), ui.Money(next.Money))
				return nil
			}
			return errors.New("hired staff member missing from roster")
		},
	}

	return cmd
}
