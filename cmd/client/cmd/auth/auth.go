package auth

import (
	"github.com/spf13/cobra"
)

// AuthCmd is the parent command for session operations.
var AuthCmd = &cobra.Command{
	Use:   "auth",
	Short: "Manage the login session",
	Long:  `Sign in, sign out and inspect the current session.`,
}
