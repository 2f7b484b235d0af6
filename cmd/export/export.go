// Package export handles ledger CSV export commands
package export

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"ekaraca/vakif-ledger/cmd/root"
	"ekaraca/vakif-ledger/internal/csvexport"
)

var outputFile string

// Cmd represents the export command
var Cmd = &cobra.Command{
	Use:   "export",
	Short: "Export the ledger to CSV",
	Long: `Export all ledger records to CSV, most recent first. Writes to
stdout unless --output is given. The delimiter is configurable via the
csv.delimiter setting.`,
	RunE: exportFunc,
}

func init() {
	Cmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output CSV file (default stdout)")
}

func exportFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	records, err := c.GetStore().ListRecords(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to list ledger records: %w", err)
	}
	if len(records) == 0 {
		fmt.Fprintln(cmd.ErrOrStderr(), "Ledger is empty, nothing to export")
		return nil
	}

	delimiter := []rune(c.GetConfig().CSV.Delimiter)[0]
	if outputFile != "" {
		return csvexport.WriteRecordsToFile(records, outputFile, delimiter, root.Log)
	}
	return csvexport.WriteRecords(records, os.Stdout, delimiter)
}
