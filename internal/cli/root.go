// Package cli wires the path generation pipeline into a command-line
// tool: extract locations, enumerate paths, collapse logic, inject into
// tracker packs, and report on the data files along the way.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ashlyng/summitpath/config"
)

var (
	cfgPath string
	verbose bool

	rootCmd = &cobra.Command{
		Use:   "summitpath",
		Short: "Path enumeration and logic synthesis for level data",
		Long: `summitpath turns level data files into location reachability logic.

The usual run:
  summitpath locations --levels data/LevelData.json --out data/LocationData.json
  summitpath paths     --levels data/LevelData.json --locations data/LocationData.json
  summitpath logic     --locations data/LocationData.json --out data/LogicData.json
  summitpath inject    --logic data/LogicData.json --pack <tracker locations dir>

check and connections inspect the level data before a run.`,
	}
)

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "summitpath.yaml", "Run configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(locationsCmd)
	rootCmd.AddCommand(pathsCmd)
	rootCmd.AddCommand(logicCmd)
	rootCmd.AddCommand(injectCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(connectionsCmd)
}

// newLogger builds the run logger. Verbose runs get development output
// at debug level.
func newLogger() (*zap.SugaredLogger, error) {
	cfg := zap.NewProductionConfig()
	if verbose {
		cfg = zap.NewDevelopmentConfig()
		cfg.Level = zap.NewAtomicLevelAt(zap.DebugLevel)
	}
	logger, err := cfg.Build()
	if err != nil {
		return nil, fmt.Errorf("build logger: %w", err)
	}
	return logger.Sugar(), nil
}

// loadConfig loads the run configuration named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config %s: %v\n", cfgPath, err)
		return nil, err
	}
	return cfg, nil
}
