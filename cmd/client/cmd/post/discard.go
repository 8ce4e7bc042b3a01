// cmd/client/cmd/post/discard.go
package post

import (
	"github.com/spf13/cobra"
)

var DiscardCmd = &cobra.Command{
	Use:   "discard",
	Short: "Drop all local edits",
	Long:  `Remove every locally stored edit, reverting to the remote copies.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, err := appFrom(cmd)
		if err != nil {
			return err
		}

		app.DiscardEdits()
		return nil
	},
}
