// Root command for the mediarack CLI.
package main

import (
	"os"

	"github.com/spf13/cobra"
)

// Global flag values.
var (
	flagConfigDir string
	flagDataDir   string
	flagListen    string
)

var rootCmd = &cobra.Command{
	Use:   "mediarack",
	Short: "mediarack is a catalog service for physical music media",
	Long: `mediarack stores metadata for a personal collection of CDs, vinyl,
and tapes in an embedded SQLite database and serves it over an HTTP/JSON API
with create, list, delete, and keyword-search operations.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfigDir, "config-dir", "", "configuration directory (default: .mediarack)")
	rootCmd.PersistentFlags().StringVar(&flagDataDir, "data-dir", "", "data directory holding media.db (default: data)")
	rootCmd.PersistentFlags().StringVar(&flagListen, "listen", "", "listen address (default: :3000)")

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(seedCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveConfigDir returns the config directory from flag, env, or default.
func resolveConfigDir() string {
	if flagConfigDir != "" {
		return flagConfigDir
	}
	if v := os.Getenv("MEDIARACK_CONFIG_DIR"); v != "" {
		return v
	}
	return ".mediarack"
}
