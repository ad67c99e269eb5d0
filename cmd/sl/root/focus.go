package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/game"
	"studioline/internal/ui"
)

func newFocusCmd() *cobra.Command {
	var (
		performance  int
		soundCapture int
		layering     int
		suggest      bool
	)

	cmd := &cobra.Command{
		Use:   "focus",
		Short: "Set or suggest the focus split for the current stage",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()
			out := cmd.OutOrStdout()

			if suggest {
				alloc, err := svc.SuggestFocus(ctx)
				if err != nil {
					return err
				}
				fmt.Fprintln(out, ui.Heading(ui.IconNote, "Suggested focus"))
				fmt.Fprintf(out, "performance %d / sound-capture %d / layering %d\n",
					alloc.Performance, alloc.SoundCapture, alloc.Layering)
				fmt.Fprintln(out, ui.Muted.Render(alloc.Reasoning))
				fmt.Fprintf(out, "%s sl focus -p %d -s %d -l %d\n", ui.Muted.Render("apply with:"),
					alloc.Performance, alloc.SoundCapture, alloc.Layering)
				return nil
			}

			alloc := game.FocusAllocation{
				Performance:  performance,
				SoundCapture: soundCapture,
				Layering:     layering,
			}
			if _, err := svc.SetFocus(ctx, alloc); err != nil {
				return err
			}
			fmt.Fprintf(out, "%s performance %d / sound-capture %d / layering %d\n",
				ui.Good.Render(ui.IconDone+" Focus set:"), performance, soundCapture, layering)
			return nil
		},
	}

	cmd.Flags().IntVarP(&performance, "performance", "p", 34, "performance share (0-100)")
	cmd.Flags().IntVarP(&soundCapture, "sound-capture", "s", 33, "sound-capture share (0-100)")
	cmd.Flags().IntVarP(&layering, "layering", "l", 33, "layering share (0-100)")
	cmd.Flags().BoolVar(&suggest, "suggest", false, "recommend a split for the current stage instead of setting one")
	return cmd
}
