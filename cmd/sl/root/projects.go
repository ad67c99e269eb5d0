package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newProjectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "projects",
		Short: "List project offers",
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

			fmt.Fprintln(out, ui.Heading(ui.IconScroll, "Project Offers"))
			if len(state.AvailableProjects) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(none — sleep to refresh the pool)"))
				return nil
			}
			for _, p := range state.AvailableProjects {
				fmt.Fprintf(out, "%s %s %s\n", ui.Key.Render(p.ID[:8]), ui.H2.Render(p.Title), ui.Muted.Render("("+p.ClientType+")"))
				fmt.Fprintf(out, "  genre %s | difficulty %d | match %s | base %s | %d stages\n",
					p.Genre, p.Difficulty, ui.MatchText(string(p.MatchRating)), ui.Money(p.PayoutBase), len(p.Stages))
			}
			return nil
		},
	}

	return cmd
}

func printProject(out io.Writer, p *game.Project) {
	fmt.Fprintf(out, "%s %s (%s, %s match)\n",
		ui.H2.Render(ui.IconDisc+" "+p.Title), ui.Muted.Render(p.ClientType),
		p.Genre, ui.MatchText(string(p.MatchRating)))
	for i, st := range p.Stages {
		marker := "   "
		switch {
		case st.Completed:
			marker = " " + ui.Good.Render("✔") + " "
		case i == p.CurrentStageIndex:
			marker = " " + ui.Gold.Render("▶") + " "
		}
		fmt.Fprintf(out, "%s%-22s %d/%d units\n", marker, st.Name, st.WorkUnitsCompleted, st.WorkUnitsRequired)
	}
	fmt.Fprintf(out, "   %s %dc / %dt\n", ui.Muted.Render("accumulated:"), p.AccumulatedCreativity, p.AccumulatedTechnical)
}
