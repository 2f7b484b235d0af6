// Package dedupe sweeps the ledger for duplicate records
package dedupe

import (
	"fmt"

	"github.com/spf13/cobra"

	"ekaraca/vakif-ledger/cmd/root"
)

// Cmd represents the dedupe command
var Cmd = &cobra.Command{
	Use:   "dedupe",
	Short: "Remove duplicate ledger records",
	Long: `Remove duplicate ledger records, keeping the oldest record of each
fingerprint group. Insert-time uniqueness normally prevents duplicates from
existing at all; this is a repair tool for ledgers imported from elsewhere.`,
	RunE: dedupeFunc,
}

func dedupeFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	removed, err := c.GetStore().RemoveDuplicateRecords(cmd.Context())
	if err != nil {
		return fmt.Errorf("duplicate sweep failed: %w", err)
	}

	if removed == 0 {
		fmt.Fprintln(cmd.OutOrStdout(), "No duplicate records found")
	} else {
		fmt.Fprintf(cmd.OutOrStdout(), "Removed %d duplicate records\n", removed)
	}
	return nil
}
