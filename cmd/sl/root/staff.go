package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newStaffCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "staff",
		Short: "List hired staff",
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

			fmt.Fprintln(out, ui.Heading(ui.IconStaff, "Staff"))
			if len(state.HiredStaff) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nobody on payroll — see 'sl hire')"))
				return nil
			}
			for _, s := range state.HiredStaff {
				affinity := ""
				if s.GenreAffinity != nil {
					affinity = ui.Muted.Render(fmt.Sprintf(" [%s +%d%%]", s.GenreAffinity.Genre, s.GenreAffinity.BonusPercent))
				}
				fmt.Fprintf(out, "%s %s — %s L%d%s\n",
					ui.Key.Render(s.ID[:8]), ui.H2.Render(s.Name), s.Role, s.LevelInRole, affinity)
				fmt.Fprintf(out, "  energy %s | %s | cre %d / tech %d / spd %d | salary %s/wk\n",
					ui.EnergyText(s.Energy), ui.StaffStatusText(string(s.Status)),
					s.PrimaryStats.Creativity, s.PrimaryStats.Technical, s.PrimaryStats.Speed,
					ui.Money(s.Salary))
			}
			return nil
		},
	}

	return cmd
}

// resolveStaffID matches a full id or an unambiguous prefix within a roster.
func resolveStaffID(roster []game.StaffMember, arg string) (string, error) {
	var matches []string
	for _, s := range roster {
		if s.ID == arg {
			return s.ID, nil
		}
		if strings.HasPrefix(s.ID, arg) {
			matches = append(matches, s.ID)
		}
	}
	switch len(matches) {
	case 1:
		return matches[0], nil
	case 0:
		return "", fmt.Errorf("no staff member matches %q", arg)
	default:
		return "", fmt.Errorf("%q matches %d staff members; use more characters", arg, len(matches))
	}
}
