package post

import (
	"fmt"

	"github.com/spf13/cobra"

	"postdeck/cmd/client/cmd/types"
	"postdeck/internal/app/client"
)

// PostCmd is the parent command for post operations.
var PostCmd = &cobra.Command{
	Use:   "post",
	Short: "Browse and edit posts",
}

func appFrom(cmd *cobra.Command) (*client.App, error) {
	app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
	if !ok || app == nil {
		return nil, fmt.Errorf("application is not initialized")
	}
	return app, nil
}
