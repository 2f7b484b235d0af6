// Package container provides dependency injection for the vakif-ledger
// application. It centralizes the creation and wiring of all application
// dependencies, making them explicit and testable.
package container

import (
	"fmt"

	"ekaraca/vakif-ledger/internal/config"
	"ekaraca/vakif-ledger/internal/ledger"
	"ekaraca/vakif-ledger/internal/logging"
	"ekaraca/vakif-ledger/internal/sqlitestore"
	"ekaraca/vakif-ledger/internal/statement"
	"ekaraca/vakif-ledger/internal/symbols"
	"ekaraca/vakif-ledger/internal/textextract"
)

// Container holds all application dependencies and provides methods to
// access them. Fields are private; the container is immutable after
// creation and dependencies flow in through constructors only.
type Container struct {
	logger    logging.Logger
	config    *config.Config
	store     ledger.Store
	sqlite    *sqlitestore.Store
	extractor textextract.Extractor
	ingestor  *ledger.Ingestor
	symbols   *symbols.Store
}

// NewContainer creates and wires all application dependencies.
func NewContainer(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("configuration cannot be nil")
	}

	// Logger first, everything else logs through it
	logger := logging.NewLogrusAdapter(cfg.Log.Level, cfg.Log.Format)
	logging.SetDefaultLogger(logger)

	store, err := sqlitestore.Open(cfg.Database.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to open ledger store: %w", err)
	}

	symbolStore, err := symbols.NewStore(cfg.Symbols.File, logger)
	if err != nil {
		store.Close()
		return nil, fmt.Errorf("failed to load symbol store: %w", err)
	}

	extractor := statement.NewExtractor(logger)
	canonicalizer := ledger.NewCanonicalizer(cfg.Ingest.Category, cfg.Ingest.SourceTag)
	ingestor := ledger.NewIngestor(store, extractor, canonicalizer, logger, cfg.Ingest.Parallelism)

	logger.Info("Container initialized successfully",
		logging.Field{Key: "database", Value: cfg.Database.Path},
		logging.Field{Key: "parallelism", Value: cfg.Ingest.Parallelism})

	return &Container{
		logger:    logger,
		config:    cfg,
		store:     store,
		sqlite:    store,
		extractor: textextract.NewFileExtractor(),
		ingestor:  ingestor,
		symbols:   symbolStore,
	}, nil
}

// GetLogger returns the container's logger instance.
func (c *Container) GetLogger() logging.Logger {
	return c.logger
}

// GetConfig returns the container's configuration instance.
func (c *Container) GetConfig() *config.Config {
	return c.config
}

// GetStore returns the ledger store.
func (c *Container) GetStore() ledger.Store {
	return c.store
}

// GetIngestor returns the statement ingestor.
func (c *Container) GetIngestor() *ledger.Ingestor {
	return c.ingestor
}

// GetTextExtractor returns the statement text extractor.
func (c *Container) GetTextExtractor() textextract.Extractor {
	return c.extractor
}

// GetSymbols returns the ticker symbol store.
func (c *Container) GetSymbols() *symbols.Store {
	return c.symbols
}

// Close releases container resources, including the database connection.
func (c *Container) Close() error {
	c.logger.Info("Container closed")
	return c.sqlite.Close()
}
