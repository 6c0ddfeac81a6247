// Package cli implements the qms command-line interface.
package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/altwise-pvt-ltd/qms-cli/internal/adapters/driven/config/file"
	"github.com/altwise-pvt-ltd/qms-cli/internal/adapters/driven/storage/sqlite"
	"github.com/altwise-pvt-ltd/qms-cli/internal/connectors/vendorapi"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/ports/driving"
	"github.com/altwise-pvt-ltd/qms-cli/internal/core/services"
	"github.com/altwise-pvt-ltd/qms-cli/internal/logger"
)

// version is set by Execute from the build.
var version = "dev"

var (
	verbose   bool
	configDir string
)

// Services wired at startup. Package-level so commands and tests can
// reach them; tests swap in mocks.
var (
	vendorService   driving.VendorService
	documentService driving.DocumentService
	store           *sqlite.Store
)

var rootCmd = &cobra.Command{
	Use:   "qms",
	Short: "Laboratory quality-management records",
	Long: `qms keeps the laboratory's controlled-document register in a local
database and synchronises vendor records, including acceptance
evaluations, with the remote QMS vendor service.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if cmd.Name() == "version" {
			return nil
		}
		return initServices()
	},
	PersistentPostRun: func(_ *cobra.Command, _ []string) {
		closeStore()
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "config directory (default ~/.qms)")
}

// Execute runs the root command.
func Execute(v string) error {
	version = v
	return rootCmd.Execute()
}

// initServices builds the real adapters and services. A no-op when the
// services are already wired, which is how tests inject mocks.
func initServices() error {
	if vendorService != nil && documentService != nil {
		return nil
	}

	cfgStore, err := file.NewConfigStore(configDir)
	if err != nil {
		return fmt.Errorf("opening config store: %w", err)
	}
	settings, err := cfgStore.Load()
	if err != nil {
		return fmt.Errorf("loading settings: %w", err)
	}
	logger.Debug("using config at %s", cfgStore.Path())

	if documentService == nil {
		st, err := sqlite.NewStore(settings.DataDir)
		if err != nil {
			return fmt.Errorf("opening local store: %w", err)
		}
		store = st
		documentService = services.NewDocumentService(st.DocumentStore())
		logger.Debug("local store at %s", st.Path())
	}

	if vendorService == nil {
		client := vendorapi.NewClient(settings.APIBaseURL,
			vendorapi.WithTimeout(time.Duration(settings.TimeoutSeconds)*time.Second))
		vendorService = services.NewVendorService(client)
	}

	return nil
}

func closeStore() {
	if store != nil {
		if err := store.Close(); err != nil {
			logger.Warn("closing local store: %v", err)
		}
		store = nil
	}
}
