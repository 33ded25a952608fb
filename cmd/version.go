package cmd

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

// Set through -ldflags at release time.
var (
	version   = "dev"
	commit    = "none"
	buildDate = "unknown"
)

var versionOutput string

type buildInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	BuildDate string `json:"buildDate"`
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Show the build of the workspaces dashboard CLI",
	RunE: func(cmd *cobra.Command, args []string) error {
		return writeVersion(cmd.OutOrStdout(), versionOutput, buildInfo{
			Version:   version,
			Commit:    commit,
			BuildDate: buildDate,
		})
	},
}

func init() {
	versionCmd.Flags().StringVarP(&versionOutput, "output", "o", "text", "Output format (text, json)")
	rootCmd.AddCommand(versionCmd)
}

func writeVersion(w io.Writer, format string, info buildInfo) error {
	switch format {
	case "json":
		data, err := json.MarshalIndent(info, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "text", "":
		fmt.Fprintln(w, logo)
		for _, f := range [][2]string{
			{"version", info.Version},
			{"commit", info.Commit},
			{"built", info.BuildDate},
		} {
			fmt.Fprintf(w, "%s%s\n", fieldLabelStyle.Render(f[0]), f[1])
		}
		return nil
	}
	return fmt.Errorf("unknown output format %q (expected text or json)", format)
}
