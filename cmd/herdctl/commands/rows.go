package commands

import (
	"encoding/json"

	"github.com/spf13/cobra"

	"herdbook/internal/domain/exports"
)

func rowsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rows",
		Short: "Print the flattened export rows as JSON (same shape as GET /exports/rows)",
		RunE: func(cmd *cobra.Command, args []string) error {
			rows, err := exportsSvc.Rows(cmd.Context())
			if err != nil {
				return err
			}
			enc := json.NewEncoder(stdout)
			enc.SetIndent("", "  ")
			return enc.Encode(exports.NewRowResponses(rows))
		},
	}
}
