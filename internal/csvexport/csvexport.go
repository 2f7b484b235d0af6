// Package csvexport writes ledger records to CSV in a standardized format.
package csvexport

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/gocarina/gocsv"

	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/models"
)

// WriteRecords marshals ledger records to w using the given delimiter.
// Amounts are fixed to two decimal places for stable output.
func WriteRecords(records []models.LedgerRecord, w io.Writer, delimiter rune) error {
	if records == nil {
		return fmt.Errorf("cannot write nil records to CSV")
	}

	for i := range records {
		records[i].Amount = records[i].Amount.Round(2)
	}

	csvWriter := csv.NewWriter(w)
	csvWriter.Comma = delimiter

	if err := gocsv.MarshalCSV(&records, gocsv.NewSafeCSVWriter(csvWriter)); err != nil {
		return fmt.Errorf("error writing CSV data: %w", err)
	}
	return nil
}

// WriteRecordsToFile writes ledger records to a CSV file, creating parent
// directories as needed.
func WriteRecordsToFile(records []models.LedgerRecord, csvFile string, delimiter rune, logger logging.Logger) error {
	if logger == nil {
		logger = logging.GetLogger()
	}
	log := logger.WithFields(
		logging.Field{Key: "file", Value: csvFile},
		logging.Field{Key: "count", Value: len(records)},
	)
	log.Info("Writing ledger records to CSV file")

	if dir := filepath.Dir(csvFile); dir != "." {
		if err := os.MkdirAll(dir, 0o750); err != nil {
			return fmt.Errorf("error creating directory: %w", err)
		}
	}

	file, err := os.Create(csvFile)
	if err != nil {
		return fmt.Errorf("error creating CSV file: %w", err)
	}
	defer func() {
		if err := file.Close(); err != nil {
			logger.WithError(err).Warn("Failed to close file")
		}
	}()

	if err := WriteRecords(records, file, delimiter); err != nil {
		return err
	}

	log.Info("Successfully wrote ledger records to CSV file")
	return nil
}
