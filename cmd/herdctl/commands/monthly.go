package commands

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"herdbook/internal/domain/views"
)

func monthlyCmd() *cobra.Command {
	var months int
	cmd := &cobra.Command{
		Use:   "monthly HERD_ID",
		Short: "Print the monthly average weight of a herd",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := herdsSvc.GetHerd(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
			fmt.Fprintf(tw, "MONTH\tAVERAGE\tANIMALS\n")
			for _, p := range views.MonthlyAverages(h, now(), months) {
				avg := "-"
				if p.Average != nil {
					avg = fmt.Sprintf("%d", *p.Average)
				}
				fmt.Fprintf(tw, "%s\t%s\t%d\n", p.Label, avg, p.Animals)
			}
			return tw.Flush()
		},
	}
	cmd.Flags().IntVar(&months, "months", views.DefaultMonths, "window size in months")
	return cmd
}
