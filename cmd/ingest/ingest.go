// Package ingest handles statement import commands
package ingest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"ekaraca/vakif-ledger/cmd/root"
	"ekaraca/vakif-ledger/internal/container"
	"ekaraca/vakif-ledger/internal/ledger"
	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/statement"
)

// Cmd represents the ingest command
var Cmd = &cobra.Command{
	Use:   "ingest [file|directory]...",
	Short: "Import statement files into the ledger",
	Long: `Import one or more statement files (.txt or .pdf) into the ledger.
Directories are scanned for statement files. Statements already ingested and
records already present are skipped, so re-running over the same files is
safe.`,
	Args: cobra.MinimumNArgs(1),
	RunE: ingestFunc,
}

func ingestFunc(cmd *cobra.Command, args []string) error {
	c := root.GetContainer()
	if c == nil {
		return fmt.Errorf("application not initialized")
	}

	files, err := collectFiles(args)
	if err != nil {
		return err
	}
	if len(files) == 0 {
		return fmt.Errorf("no statement files (.txt or .pdf) found")
	}

	var failures int
	for _, file := range files {
		if err := ingestFile(cmd, c, file); err != nil {
			root.Log.WithError(err).WithField("file", file).Error("Failed to ingest statement")
			failures++
		}
	}
	if failures > 0 {
		return fmt.Errorf("%d of %d statement files failed", failures, len(files))
	}
	return nil
}

// collectFiles expands arguments into a sorted list of statement files.
func collectFiles(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot access %s: %w", arg, err)
		}
		if !info.IsDir() {
			files = append(files, arg)
			continue
		}

		entries, err := os.ReadDir(arg)
		if err != nil {
			return nil, fmt.Errorf("cannot read directory %s: %w", arg, err)
		}
		for _, entry := range entries {
			if entry.IsDir() {
				continue
			}
			switch strings.ToLower(filepath.Ext(entry.Name())) {
			case ".txt", ".pdf":
				files = append(files, filepath.Join(arg, entry.Name()))
			}
		}
	}
	sort.Strings(files)
	return files, nil
}

func ingestFile(cmd *cobra.Command, c *container.Container, file string) error {
	data, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("error reading statement file: %w", err)
	}

	text, err := c.GetTextExtractor().ExtractText(cmd.Context(), file)
	if err != nil {
		return fmt.Errorf("error extracting statement text: %w", err)
	}

	lines := statement.NormalizeLines(text)
	result, err := c.GetIngestor().Ingest(cmd.Context(), filepath.Base(file), data, lines)
	if err != nil {
		if errors.Is(err, ledger.ErrDuplicateDocument) {
			root.Log.WithField("file", file).
				Warn("Statement already ingested, skipping")
			return nil
		}
		return err
	}

	root.Log.WithFields(
		logging.Field{Key: "file", Value: file},
		logging.Field{Key: "found", Value: result.TotalRecords},
		logging.Field{Key: logging.FieldAccepted, Value: result.Accepted},
		logging.Field{Key: logging.FieldDuplicates, Value: result.DuplicateRecords},
	).Info("Statement ingested")
	return nil
}
