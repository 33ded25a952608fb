package cmd

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/go-logr/logr"
	"github.com/spf13/cobra"

	"github.com/stuttgart-things/workspaces/internal/catalog"
	"github.com/stuttgart-things/workspaces/internal/header"
)

var (
	headerLoggedIn        bool
	headerAdminViewHidden bool
	headerCanToggleAdmin  bool
	headerBrand           string
	headerOutput          string
)

var headerCmd = &cobra.Command{
	Use:   "header",
	Short: "Render the dashboard header",
	Long:  `Decides what the dashboard header shows for a session state and renders it.`,
	RunE:  runHeader,
}

func init() {
	headerCmd.Flags().BoolVar(&headerLoggedIn, "logged-in", false, "Session is authenticated")
	headerCmd.Flags().BoolVar(&headerAdminViewHidden, "admin-view-hidden", false, "Admin area is currently hidden")
	headerCmd.Flags().BoolVar(&headerCanToggleAdmin, "can-toggle-admin", false, "Session may switch the admin area")
	headerCmd.Flags().StringVar(&headerBrand, "brand", "", "Brand name (default: catalog brand or Workspaces)")
	headerCmd.Flags().StringVarP(&headerOutput, "output", "o", "text", "Output format (text, json)")

	rootCmd.AddCommand(headerCmd)
}

// headerView is the JSON form of a header decision
type headerView struct {
	Display     string `json:"display"`
	AdminToggle string `json:"adminToggle,omitempty"`
}

func runHeader(cmd *cobra.Command, args []string) error {
	view := header.Decide(header.State{
		LoggedIn:             headerLoggedIn,
		AdminViewHidden:      headerAdminViewHidden,
		CanRenderAdminToggle: headerCanToggleAdmin,
	})

	if headerOutput == "json" {
		data, err := json.MarshalIndent(headerView{
			Display:     view.Display.String(),
			AdminToggle: view.Toggle.Label(),
		}, "", "  ")
		if err != nil {
			return fmt.Errorf("marshalling JSON: %w", err)
		}
		fmt.Fprintln(cmd.OutOrStdout(), string(data))
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), header.Render(view, resolveBrand(cmd.Context(), headerBrand)))
	return nil
}

// resolveBrand prefers the flag, then the catalog brand, then the default
func resolveBrand(ctx context.Context, flagValue string) string {
	if flagValue != "" {
		return flagValue
	}
	if c, err := loadCatalog(ctx, resolveCatalogPath(catalogPath), logr.Discard()); err == nil {
		return c.Brand
	}
	return catalog.DefaultBrand
}
