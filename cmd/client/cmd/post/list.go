// cmd/client/cmd/post/list.go
package post

import (
	"strconv"

	"github.com/spf13/cobra"

	"postdeck/internal/router"
)

var listUserID int

var ListCmd = &cobra.Command{
	Use:   "list",
	Short: "List posts",
	Long: `Show the post collection with local edits overlaid.

Locally edited posts are marked with an asterisk. With --user the list
is limited to one author.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		params := map[string]string{}
		if listUserID > 0 {
			params["userId"] = strconv.Itoa(listUserID)
		}

		app.Start(router.BuildFragment("posts", params))
		return nil
	},
}

func init() {
	ListCmd.Flags().IntVarP(&listUserID, "user", "u", 0, "only posts by this author id")
}
