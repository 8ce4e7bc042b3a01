// cmd/client/cmd/auth/logout.go
package auth

import (
	"fmt"

	"github.com/spf13/cobra"

	"postdeck/cmd/client/cmd/types"
	"postdeck/internal/app/client"
)

var LogoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Sign out and destroy the local session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application is not initialized")
		}

		if !app.IsAuthenticated() {
			fmt.Println("No active session.")
			return nil
		}

		app.Logout()
		fmt.Println("Signed out.")

		return nil
	},
}
