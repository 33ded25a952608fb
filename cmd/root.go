package cmd

import (
	"fmt"
	"os"

	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/spf13/cobra"

	"github.com/stuttgart-things/workspaces/internal/header"
)

var (
	catalogPath string
	verbosity   int

	logo = header.Logo()
)

var rootCmd = &cobra.Command{
	Use:   "workspaces",
	Short: "Workspaces CLI tool",
	Long:  `Workspaces is a CLI tool for browsing and editing workspace templates.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println(logo)
		_ = cmd.Usage()
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&catalogPath, "catalog", "", "Path to the catalog file (default: $WORKSPACES_CATALOG or catalog.yaml)")
	rootCmd.PersistentFlags().IntVarP(&verbosity, "verbosity", "v", 0, "Log verbosity (0 = errors and notices, 1 = state changes)")
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger writes structured log lines to stderr
func newLogger() logr.Logger {
	return funcr.New(func(prefix, args string) {
		if prefix != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", prefix, args)
			return
		}
		fmt.Fprintln(os.Stderr, args)
	}, funcr.Options{Verbosity: verbosity})
}
