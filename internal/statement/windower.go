// Package statement turns extracted brokerage statement text into structured
// transactions. Segmentation finds transaction anchors and bounds their
// context; extraction pulls typed fields out of each context window.
package statement

import (
	"strings"

	"ekaraca/vakif-ledger/internal/models"
)

const (
	// anchorMarker marks the start of a transaction block: a settlement date
	// followed by the statement's fixed "valörlü GZ:" literal.
	anchorMarker = "valörlü GZ:"

	// maxLookahead bounds how many lines after the anchor may belong to one
	// transaction. A window that reaches the bound without a side marker is
	// malformed and will be rejected by the extractor.
	maxLookahead = 10
)

// NormalizeLines splits raw statement text into trimmed, non-empty lines.
func NormalizeLines(text string) []string {
	rawLines := strings.Split(text, "\n")
	lines := make([]string, 0, len(rawLines))
	for _, line := range rawLines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

// Segment scans the ordered line stream once and materializes a context
// window for every anchor line, in document order. Each window holds the
// anchor plus up to maxLookahead following lines, closed early (inclusive)
// as soon as a buy or sell side marker appears so one window never bleeds
// into the next transaction.
func Segment(lines []string) []models.ContextWindow {
	var windows []models.ContextWindow

	for i, line := range lines {
		if !strings.Contains(line, anchorMarker) {
			continue
		}

		window := models.ContextWindow{
			Start: i,
			Lines: []string{line},
		}
		for j := 1; j <= maxLookahead && i+j < len(lines); j++ {
			next := lines[i+j]
			window.Lines = append(window.Lines, next)
			if hasSideMarker(next) {
				break
			}
		}

		windows = append(windows, window)
	}

	return windows
}

func hasSideMarker(line string) bool {
	return strings.Contains(line, string(models.SideBuy)) ||
		strings.Contains(line, string(models.SideSell))
}
