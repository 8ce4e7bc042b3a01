// cmd/client/cmd/analytics.go
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"postdeck/cmd/client/cmd/types"
	"postdeck/internal/app/client"
)

var analyticsCmd = &cobra.Command{
	Use:   "analytics",
	Short: "Show aggregate statistics over the post collection",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application is not initialized")
		}

		app.Start("analytics")
		return nil
	},
}
