// aglauncher is a kiosk launcher for arcade game booths.
//
// Usage:
//
//	aglauncher                - Run the kiosk (same as "aglauncher run")
//	aglauncher run            - Run the kiosk
//	aglauncher list           - Print the game catalog
//	aglauncher validate       - Check that every catalog file exists
//	aglauncher stats          - Show play history
//
// Global flags:
//
//	--config <path>     - Config file (default: $AGLAUNCHER_CONFIG or aglauncher.toml)
//	--log-level <level> - Override the configured log level
package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/BrandonKowalski/aglauncher/pkg/aglauncher/config"
)

var (
	flagConfig   string
	flagLogLevel string
)

func init() {
	// SDL calls must stay on the main thread.
	runtime.LockOSThread()

	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to the config file")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "Log level (debug, info, warn, error)")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(statsCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "aglauncher",
	Short: "Kiosk launcher for arcade game booths",
	Long: `aglauncher shows a catalog of games as a carousel, launches the
selected game and asks players to hand over once their session is up.

Examples:
  aglauncher
  aglauncher --config booth.toml
  aglauncher validate
  aglauncher stats`,
	SilenceUsage: true,
	RunE:         runKiosk,
}

// loadConfig resolves and loads the config, applying the --log-level flag.
func loadConfig() (config.Config, error) {
	path := config.Resolve(flagConfig)
	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}
	if flagLogLevel != "" {
		cfg.Logging.Level = flagLogLevel
	}
	return cfg, nil
}
