// Package root contains the root command for the application
package root

import (
	"fmt"

	"github.com/spf13/cobra"

	"ekaraca/vakif-ledger/internal/config"
	"ekaraca/vakif-ledger/internal/container"
	"ekaraca/vakif-ledger/internal/logging"
)

var (
	// Log is the shared logger instance for commands. It is replaced by the
	// configured logger once the container is initialized.
	Log logging.Logger = logging.GetLogger()

	appContainer *container.Container

	// Cmd is the root command
	Cmd = &cobra.Command{
		Use:   "vakif-ledger",
		Short: "Import Turkish bank statements into a deduplicated ledger.",
		Long: `vakif-ledger extracts securities transactions from VakifBank statement
text, canonicalizes them into ledger records and appends them to a local
SQLite ledger. Re-importing the same statement or overlapping periods never
creates duplicate records.`,
		Run: func(cmd *cobra.Command, args []string) {
			Log.Info("Welcome to vakif-ledger!")
			Log.Info("Use --help to see available commands")
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			config.LoadEnv()

			cfg, err := config.InitializeConfig()
			if err != nil {
				return fmt.Errorf("failed to load configuration: %w", err)
			}

			appContainer, err = container.NewContainer(cfg)
			if err != nil {
				return fmt.Errorf("failed to initialize application: %w", err)
			}
			Log = appContainer.GetLogger()
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if appContainer != nil {
				if err := appContainer.Close(); err != nil {
					Log.WithError(err).Warn("Failed to close application container")
				}
			}
		},
	}
)

// GetContainer returns the application container. It is nil until the root
// command's PersistentPreRun has executed.
func GetContainer() *container.Container {
	return appContainer
}

// SetContainer replaces the application container. Intended for tests.
func SetContainer(c *container.Container) {
	appContainer = c
}
