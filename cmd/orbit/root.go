package main

import (
	"fmt"
	"os"

	"github.com/Carmen-Shannon/oxy-orbit/config"
	"github.com/spf13/cobra"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:           "orbit",
	Short:         "Orbit camera viewer",
	Long:          `orbit drives an orbit camera around a fixed target with WASD or the arrow keys.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "camera config file (.yaml, .yml or .toml)")
	rootCmd.AddCommand(newViewCmd(), newSimulateCmd())
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadConfig returns the defaults when no path is given.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		return config.Default(), nil
	}
	return config.Load(path)
}
