// Package symbols manages the set of known Borsa Istanbul ticker codes used
// to recognize stock symbols in free-form statement text.
package symbols

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"ekaraca/vakif-ledger/internal/logging"
)

// fallbackCodes covers the most commonly traded BIST tickers and is used
// when no symbols file is available.
var fallbackCodes = []string{
	"AKBNK", "GARAN", "ISCTR", "HALKB", "YKBNK", "THYAO", "SISE", "BIMAS",
	"ALBRK", "EREGL", "KRDMD", "ASELS", "TUPRS", "TCELL", "PGSUS", "SAHOL",
	"ARCLK", "KCHOL", "DOHOL", "EKGYO", "TOASO", "TTKOM", "PETKM", "KOZAL",
	"TTRAK", "FROTO", "TAVHL", "KOZAA", "MGROS", "ULKER", "VAKBN", "ENKAI",
	"CWENE", "GUBRF", "IHEVA", "KERVT", "LOGO", "NETAS", "OTKAR", "SELEC",
	"SOKM", "VESTL", "YESIL", "ZRGYO", "ADGYO", "AEFES", "AGESA", "AGHOL",
	"ALTIN",
}

// symbolsFile is the on-disk YAML layout.
type symbolsFile struct {
	Symbols []string `yaml:"symbols"`
}

// Store resolves ticker symbols against a known-code set loaded from a YAML
// file, falling back to a compiled-in list when the file is absent.
type Store struct {
	file   string
	codes  map[string]struct{}
	logger logging.Logger
}

// NewStore loads the symbol set. A missing file is not an error: the
// fallback set is used and a warning logged.
func NewStore(file string, logger logging.Logger) (*Store, error) {
	if logger == nil {
		logger = logging.GetLogger()
	}
	s := &Store{file: file, logger: logger}

	codes, err := s.loadCodes()
	if err != nil {
		return nil, err
	}
	s.codes = make(map[string]struct{}, len(codes))
	for _, code := range codes {
		s.codes[strings.ToUpper(strings.TrimSpace(code))] = struct{}{}
	}
	return s, nil
}

func (s *Store) loadCodes() ([]string, error) {
	if s.file == "" {
		return fallbackCodes, nil
	}

	path, err := s.resolveFile(s.file)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.WithField("file", s.file).
				Warn("Symbols file not found, using built-in ticker set")
			return fallbackCodes, nil
		}
		return nil, fmt.Errorf("error resolving symbols file: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading symbols file: %w", err)
	}

	var parsed symbolsFile
	if err := yaml.Unmarshal(data, &parsed); err != nil {
		return nil, fmt.Errorf("error parsing symbols file: %w", err)
	}
	if len(parsed.Symbols) == 0 {
		s.logger.WithField("file", path).
			Warn("Symbols file contains no entries, using built-in ticker set")
		return fallbackCodes, nil
	}

	s.logger.WithFields(
		logging.Field{Key: "file", Value: path},
		logging.Field{Key: "count", Value: len(parsed.Symbols)},
	).Debug("Loaded ticker symbols")
	return parsed.Symbols, nil
}

// resolveFile looks for the symbols file in standard locations.
func (s *Store) resolveFile(filename string) (string, error) {
	if filepath.IsAbs(filename) {
		if _, err := os.Stat(filename); err != nil {
			return "", err
		}
		return filename, nil
	}

	locations := []string{
		filename,
		filepath.Join("config", filename),
	}
	if homeDir, err := os.UserHomeDir(); err == nil {
		locations = append(locations,
			filepath.Join(homeDir, ".vakif-ledger", filename))
	}

	for _, location := range locations {
		if _, err := os.Stat(location); err == nil {
			return location, nil
		}
	}
	return "", os.ErrNotExist
}

// Known reports whether code is a recognized ticker symbol.
func (s *Store) Known(code string) bool {
	_, ok := s.codes[strings.ToUpper(code)]
	return ok
}

// Find scans free-form text for the first recognized ticker symbol. Words
// are stripped to letters and only 4-6 character candidates are checked.
func (s *Store) Find(text string) (string, bool) {
	for _, word := range strings.Fields(strings.ToUpper(text)) {
		clean := stripNonLetters(word)
		if len(clean) < 4 || len(clean) > 6 {
			continue
		}
		if _, ok := s.codes[clean]; ok {
			return clean, true
		}
	}
	return "", false
}

// All returns the full symbol set in sorted order.
func (s *Store) All() []string {
	codes := make([]string, 0, len(s.codes))
	for code := range s.codes {
		codes = append(codes, code)
	}
	sort.Strings(codes)
	return codes
}

// Save writes the current symbol set back to the configured YAML file.
func (s *Store) Save() error {
	if s.file == "" {
		return fmt.Errorf("no symbols file configured")
	}

	path := s.file
	if !filepath.IsAbs(path) {
		if resolved, err := s.resolveFile(path); err == nil {
			path = resolved
		}
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating symbols directory: %w", err)
		}
	}

	data, err := yaml.Marshal(symbolsFile{Symbols: s.All()})
	if err != nil {
		return fmt.Errorf("error marshaling symbols: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("error writing symbols file: %w", err)
	}
	return nil
}

// Add registers a new ticker symbol in memory. Call Save to persist it.
func (s *Store) Add(code string) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return
	}
	s.codes[code] = struct{}{}
}

func stripNonLetters(word string) string {
	var b strings.Builder
	for _, r := range word {
		if r >= 'A' && r <= 'Z' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
