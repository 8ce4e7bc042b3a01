// cmd/client/cmd/auth/status.go
package auth

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"postdeck/cmd/client/cmd/types"
	"postdeck/internal/app/client"
)

var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the current session",
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application is not initialized")
		}

		sess, err := app.Session()
		if err != nil {
			fmt.Println("No active session. Run 'postdeck auth login'.")
			return nil
		}

		fmt.Printf("Signed in as:  %s\n", sess.Email)
		fmt.Printf("Company code:  %s\n", sess.CompanyCode)
		fmt.Printf("Region:        %s\n", sess.Region)
		fmt.Printf("Session since: %s\n", sess.LoginTime.Local().Format(time.RFC1123))

		return nil
	},
}
