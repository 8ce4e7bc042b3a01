// cmd/client/cmd/auth/login.go
package auth

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"postdeck/cmd/client/cmd/types"
	"postdeck/internal/app/client"
	"postdeck/internal/domain/session"
)

var LoginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in to the posts board",
	Long: `Create a local session for the posts board.

Authentication is client-side only: the credentials gate the local
session, nothing is verified against the remote API.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application is not initialized")
		}

		fmt.Println("=== Sign in ===")
		fmt.Println()

		fmt.Print("Company code: ")
		var companyCode string
		_, _ = fmt.Scanln(&companyCode)

		fmt.Printf("Region (%s/%s/%s): ",
			session.RegionEurope, session.RegionAsia, session.RegionAmericas)
		var region string
		_, _ = fmt.Scanln(&region)

		fmt.Print("Email: ")
		var email string
		_, _ = fmt.Scanln(&email)

		fmt.Print("Password: ")
		if _, err := term.ReadPassword(int(os.Stdin.Fd())); err != nil {
			return fmt.Errorf("failed to read password: %w", err)
		}
		fmt.Println()

		if err := app.Login(companyCode, session.Region(strings.TrimSpace(region)), email); err != nil {
			return err
		}

		fmt.Println()
		fmt.Println("Signed in. Run 'postdeck post list' to browse the board.")

		return nil
	},
}
