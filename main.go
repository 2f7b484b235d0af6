// Package main provides the entry point for the vakif-ledger CLI application.
package main

import (
	"fmt"
	"os"

	"ekaraca/vakif-ledger/cmd/dedupe"
	"ekaraca/vakif-ledger/cmd/export"
	"ekaraca/vakif-ledger/cmd/ingest"
	"ekaraca/vakif-ledger/cmd/root"
	"ekaraca/vakif-ledger/cmd/serve"
	"ekaraca/vakif-ledger/cmd/stats"
)

func init() {
	root.Cmd.AddCommand(ingest.Cmd)
	root.Cmd.AddCommand(serve.Cmd)
	root.Cmd.AddCommand(export.Cmd)
	root.Cmd.AddCommand(stats.Cmd)
	root.Cmd.AddCommand(dedupe.Cmd)
}

func main() {
	if err := root.Cmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
