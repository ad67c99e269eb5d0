package root

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newWorkCmd() *cobra.Command {
	var (
		minigameScore int
		minigameKind  string
	)

	cmd := &cobra.Command{
		Use:   "work",
		Short: "Spend today's effort on the active project",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Work(ctx, minigameResult(minigameKind, minigameScore))
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			outcome := res.Outcome

			if outcome.Status.Blocked() {
				fmt.Fprintln(out, ui.Warn.Render(ui.IconWarn+" "+outcome.Status.String()))
				return nil
			}

			fmt.Fprintf(out, "%s +%d work units, +%d creativity, +%d technical\n",
				ui.Good.Render(ui.IconBolt+" Session done:"),
				outcome.WorkUnitsAdded, outcome.CreativityGain, outcome.TechnicalGain)
			if outcome.MinigameXP > 0 {
				fmt.Fprintf(out, "%s +%d XP from the session challenge\n", ui.Muted.Render(ui.IconNote), outcome.MinigameXP)
			}
			if outcome.StageCompleted && !outcome.ProjectCompleted {
				fmt.Fprintf(out, "%s Stage %q complete — on to the next.\n", ui.Gold.Render(ui.IconSparkle), outcome.CompletedStage)
			}
			if outcome.PlayerLevelUps > 0 {
				fmt.Fprintf(out, "%s ×%d\n", ui.BadgeLevelUp, outcome.PlayerLevelUps)
			}
			if outcome.ProjectCompleted && outcome.Review != nil {
				printReview(out, outcome.Review, res.CriticalRolled)
			}
			return nil
		},
	}

	cmd.Flags().IntVar(&minigameScore, "minigame-score", 0, "points earned in an external session challenge")
	cmd.Flags().StringVar(&minigameKind, "minigame", "", "challenge reward kind: creativity, technical, or xp")
	return cmd
}

// minigameResult adapts the CLI flags into the engine's reward shape. No
// flags means no minigame ran.
func minigameResult(kind string, score int) *game.MinigameResult {
	if kind == "" || score <= 0 {
		return nil
	}
	var rewardType game.MinigameRewardType
	switch kind {
	case "technical":
		rewardType = game.RewardTechnical
	case "xp":
		rewardType = game.RewardXP
	default:
		rewardType = game.RewardCreativity
	}
	return &game.MinigameResult{
		Success: true,
		Rewards: []game.MinigameReward{{Type: rewardType, Value: score}},
	}
}

func printReview(out io.Writer, r *game.ProjectReview, critical bool) {
	fmt.Fprintln(out, "")
	fmt.Fprintln(out, ui.Heading(ui.IconTrophy, "Project Complete: "+r.ProjectTitle))
	if critical {
		fmt.Fprintln(out, ui.BadgeCritical)
	}
	fmt.Fprintf(out, "%s %s (%d/100)\n", ui.Key.Render("Rating:"), ui.Stars(r.StarRating), r.FinalScore)
	fmt.Fprintf(out, "%s %s   %s +%d\n", ui.Key.Render("Payout:"), ui.Money(r.Payout), ui.Key.Render("Reputation:"), r.ReputationGain)
	fmt.Fprintf(out, "%s +%d player XP\n", ui.Key.Render("XP:"), r.PlayerXPGain)
	for genre, xp := range r.SkillXPGains {
		fmt.Fprintf(out, "  %s skill +%d XP\n", genre, xp)
	}
	if len(r.StageOutcomes) > 0 {
		fmt.Fprintln(out, ui.H2.Render("Stages"))
		for _, st := range r.StageOutcomes {
			fmt.Fprintf(out, "- %-22s %3.0f%%  %s\n", st.Name, st.CompletionPct, ui.Muted.Render(st.Feedback))
		}
	}
	if len(r.StaffOutcomes) > 0 {
		fmt.Fprintln(out, ui.H2.Render("Staff"))
		for _, so := range r.StaffOutcomes {
			fmt.Fprintf(out, "- %-18s %4d pts (+%d XP)  %s\n", so.Name, so.PointsContributed, so.XPGained, ui.Muted.Render(so.Feedback))
		}
	}
}
