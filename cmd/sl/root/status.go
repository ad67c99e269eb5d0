package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newStatusCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "status",
		Short: "Show the studio, the active project, and progression",
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

			fmt.Fprintln(out, ui.Heading(ui.IconStudio, "Studio Status"))
			fmt.Fprintln(out, ui.LabelValue("Day", state.CurrentDay))
			fmt.Fprintln(out, ui.LabelValue("Funds", ui.Money(state.Money)))
			fmt.Fprintln(out, ui.LabelValue("Reputation", state.Reputation))
			fmt.Fprintln(out, "")

			p := state.Player
			fmt.Fprintln(out, ui.H2.Render(ui.IconSparkle+" Progression"))
			fmt.Fprintln(out, ui.LabelValue("Level", fmt.Sprintf("%d (%d/%d XP)", p.Level, p.XP, p.XPToNextLevel)))
			fmt.Fprintln(out, ui.LabelValue("Perk points", p.PerkPoints))
			fmt.Fprintln(out, ui.LabelValue("Attribute points", p.AttributePoints))
			a := p.Attributes
			fmt.Fprintf(out, "- 🎨 Creative Intuition: %d\n", a.CreativeIntuition)
			fmt.Fprintf(out, "- 🔧 Technical Aptitude: %d\n", a.TechnicalAptitude)
			fmt.Fprintf(out, "- 🎯 Focus Mastery: %d\n", a.FocusMastery)
			fmt.Fprintf(out, "- 💼 Business Acumen: %d\n", a.BusinessAcumen)
			fmt.Fprintf(out, "- 🗣️ Charisma: %d\n", a.Charisma)
			fmt.Fprintf(out, "- 🍀 Luck: %d\n", a.Luck)
			fmt.Fprintln(out, "")

			fmt.Fprintln(out, ui.H2.Render("🔓 Unlocks"))
			for _, m := range game.Milestones {
				label := fmt.Sprintf("level %d", m.Level)
				if state.Player.Level >= m.Level {
					fmt.Fprintf(out, "- %s %s\n", ui.Good.Render("unlocked"), ui.Muted.Render(label+": "+m.Message))
				} else {
					fmt.Fprintf(out, "- %s %s\n", ui.Bad.Render("locked"), ui.Muted.Render(label+": "+m.Message))
				}
			}
			fmt.Fprintln(out, "")

			if state.ActiveProject != nil {
				printProject(out, state.ActiveProject)
			} else {
				fmt.Fprintln(out, ui.Muted.Render("No active project. Accept one with 'sl accept <id>'."))
			}
			return nil
		},
	}

	return cmd
}
