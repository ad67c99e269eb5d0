package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/ui"
)

func newHistoryCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "history",
		Short: "Show recent project reviews",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			reviews, err := svc.History(ctx, limit)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()

			fmt.Fprintln(out, ui.Heading(ui.IconDisc, "Release History"))
			if len(reviews) == 0 {
				fmt.Fprintln(out, ui.Muted.Render("(nothing shipped yet)"))
				return nil
			}
			for _, r := range reviews {
				crit := ""
				if r.CriticalSuccess {
					crit = " " + ui.BadgeCritical
				}
				fmt.Fprintf(out, "day %-3d %s %s%s\n",
					r.Day, ui.Stars(r.StarRating), ui.H2.Render(r.ProjectTitle), crit)
				fmt.Fprintf(out, "        %s | +%s, +%d rep, +%d xp\n",
					r.Genre, ui.Money(r.Payout), r.ReputationGain, r.PlayerXPGain)
			}
			return nil
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "n", 10, "number of reviews to show")
	return cmd
}
