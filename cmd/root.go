package cmd

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/dave-shawley/massive-octo-dangerzone/internal/config"
	"github.com/dave-shawley/massive-octo-dangerzone/internal/storage"
)

var (
	storeFlag    string
	graphURLFlag string
	debugFlag    bool
)

var rootCmd = &cobra.Command{
	Use:   "familytree",
	Short: "Interactive genealogy record keeper",
	Long: "Enter people, sources, and familial relationships through a " +
		"console prompt. Attributes are kept in a local SQLite store and " +
		"relationships in a graph database.",
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Store name (database file is <store>.ser)")
	rootCmd.PersistentFlags().StringVar(&graphURLFlag, "graph-url", "", "Base URL of the graph store REST API")
	rootCmd.PersistentFlags().BoolVar(&debugFlag, "debug", false, "Enable debug logging")
}

// openStorage resolves configuration (environment beats flags beats
// defaults) and opens the storage layer.
func openStorage() (*storage.Layer, error) {
	config.LoadEnv()
	settings := config.Resolve(storeFlag, graphURLFlag, debugFlag)
	return storage.Open(settings.StoreName, settings.GraphURL,
		storage.WithLogger(newLogger(settings.Debug)))
}

func newLogger(debug bool) *log.Logger {
	level := log.InfoLevel
	if debug {
		level = log.DebugLevel
	}
	return log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Level:           level,
	})
}
