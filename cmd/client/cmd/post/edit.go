// cmd/client/cmd/post/edit.go
package post

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var (
	editTitle string
	editBody  string
)

var EditCmd = &cobra.Command{
	Use:   "edit <id>",
	Short: "Edit a post locally",
	Long: `Stage an edit for a post and save it as a local overlay.

The remote API does not retain writes, so the edit is authoritative
locally and applied on top of the remote copy from then on.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		if _, err := strconv.Atoi(args[0]); err != nil {
			return fmt.Errorf("post id must be a number: %q", args[0])
		}
		if editTitle == "" && editBody == "" {
			return fmt.Errorf("nothing to change, pass --title and/or --body")
		}

		app.Start("detail?id=" + args[0])
		if app.CurrentRoute() == nil || app.CurrentRoute().Path != "detail" {
			// Redirected away, most likely to the login screen.
			return nil
		}

		if editTitle != "" {
			if err := app.EditTitle(editTitle); err != nil {
				return err
			}
		}
		if editBody != "" {
			if err := app.EditBody(editBody); err != nil {
				return err
			}
		}

		return app.Save()
	},
}

func init() {
	EditCmd.Flags().StringVarP(&editTitle, "title", "t", "", "new title")
	EditCmd.Flags().StringVarP(&editBody, "body", "b", "", "new body")
}
