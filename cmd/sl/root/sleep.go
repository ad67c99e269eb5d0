package root

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"studioline/internal/ui"
)

func newSleepCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sleep",
		Short: "End the day: staff recover, salaries come due, pools refresh",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			svc, cleanup, err := openService(ctx)
			if err != nil {
				return err
			}
			defer cleanup()

			res, err := svc.Sleep(ctx)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			o := res.Outcome

			fmt.Fprintf(out, "%s Day %d begins.\n", ui.Heading(ui.IconSleep, "Good night."), o.NewDay)
			if o.SalariesPaid > 0 {
				fmt.Fprintf(out, "%s Salaries paid: %s (balance %s)\n",
					ui.Muted.Render(ui.IconMoney), ui.Money(o.SalariesPaid), ui.Money(res.State.Money))
			}
			if len(o.StaffRested) > 0 {
				fmt.Fprintf(out, "%s Worn out, now resting: %s\n", ui.Warn.Render(ui.IconWarn), strings.Join(o.StaffRested, ", "))
			}
			if len(o.StaffReturned) > 0 {
				fmt.Fprintf(out, "%s Back on their feet: %s\n", ui.Good.Render(ui.IconDone), strings.Join(o.StaffReturned, ", "))
			}
			for _, m := range o.Unlocked {
				fmt.Fprintf(out, "%s %s\n", ui.Gold.Render(ui.IconSparkle+" Unlocked:"), m.Message)
			}
			return nil
		},
	}

	return cmd
}
