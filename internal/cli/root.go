// Package cli implements the scrubbar command line.
package cli

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/depeter/scrubbar/internal/config"
)

var (
	cfgFile string
	jsonOut bool
	verbose bool

	cfg *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "scrubbar",
	Short: "A compact audio player with a draggable seek bar",
	Long: `Scrubbar plays a single audio track in a small window: artwork, title,
a running clock, play/pause and skip buttons, and a seek bar you can drag,
with a cancel zone for touch screens.`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			log.SetFlags(log.LstdFlags | log.Lshortfile)
		}
		return initConfig()
	},
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default: $XDG_CONFIG_HOME/scrubbar/config.toml)")
	rootCmd.PersistentFlags().BoolVarP(&jsonOut, "json", "j", false, "output as JSON")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func initConfig() error {
	var err error
	if cfgFile != "" {
		cfg, err = config.LoadFrom(cfgFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	return nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// configPath returns the file config commands read and write.
func configPath() (string, error) {
	if cfgFile != "" {
		return cfgFile, nil
	}
	return config.ConfigPath()
}

// imageCacheDir is where artwork is cached on disk.
func imageCacheDir() string {
	if dir, err := config.ConfigDir(); err == nil {
		return filepath.Join(dir, "cache", "images")
	}
	return filepath.Join(os.TempDir(), "scrubbar", "images")
}
