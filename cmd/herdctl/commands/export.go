package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"herdbook/internal/export"
)

func exportCmd() *cobra.Command {
	var (
		format string
		out    string
		lang   string
	)
	cmd := &cobra.Command{
		Use:   "export",
		Short: "Render the inventory to xlsx, pdf, csv or sqlite",
		RunE: func(cmd *cobra.Command, args []string) error {
			rendered, err := exportsSvc.Render(cmd.Context(), format, export.NegotiateLocale(lang))
			if err != nil {
				return fmt.Errorf("%w (available: %s)", err, strings.Join(exportsSvc.Formats(), ", "))
			}
			if out == "" {
				out = rendered.FileName
			}
			if err := os.WriteFile(out, rendered.Body, 0o644); err != nil {
				return err
			}
			fmt.Fprintf(stdout, "Wrote %s (%d bytes)\n", out, len(rendered.Body))
			return nil
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", "xlsx", "xlsx | pdf | csv | sqlite")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: localized inventory name)")
	cmd.Flags().StringVar(&lang, "lang", "en", "header language (en, de)")
	return cmd
}
