package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/rovshanmuradov/mirror-dash/internal/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:   "mirror-dash",
	Short: "Read-only terminal dashboard for the mirror trading bot",
	Long: `mirror-dash polls the state files written by the executor and the
watcher processes and renders them as a live multi-panel terminal view.

It never writes to the state files. Missing or half-written files are shown
as "waiting" placeholders until the producers catch up.

Press q or ctrl+c to exit.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runDashboard,
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to an optional config file (yaml, json, toml)")
	config.RegisterFlags(rootCmd.Flags())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
