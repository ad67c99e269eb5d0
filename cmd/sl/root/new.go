package root

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"studioline/internal/ui"
)

func newNewCmd() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "new",
		Short: "Start a fresh studio",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			state, err := svc.NewGame(ctx, force)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, ui.Heading(ui.IconStudio, "Welcome to your studio"))
			fmt.Fprintln(out, ui.LabelValue("Save", svc.SaveName()))
			fmt.Fprintln(out, ui.LabelValue("Funds", ui.Money(state.Money)))
			fmt.Fprintf(out, "%s %d project offers waiting — see %s\n",
				ui.Muted.Render(ui.IconScroll), len(state.AvailableProjects), ui.Key.Render("sl projects"))
			return nil
		},
	}

	cmd.Flags().BoolVarP(&force, "force", "f", false, "overwrite an existing save in this slot")
	return cmd
}
