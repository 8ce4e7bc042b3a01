// cmd/client/cmd/post/view.go
package post

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var ViewCmd = &cobra.Command{
	Use:   "view <id>",
	Short: "Show one post",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("post id must be a number: %q", args[0])
		}

		app.Start("detail?id=" + args[0])
		return nil
	},
}
