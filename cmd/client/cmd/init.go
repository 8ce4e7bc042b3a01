// cmd/client/cmd/init.go
package cmd

import (
	"postdeck/cmd/client/cmd/auth"
	"postdeck/cmd/client/cmd/post"
)

func init() {
	// Команды аутентификации
	rootCmd.AddCommand(auth.AuthCmd)
	auth.AuthCmd.AddCommand(auth.LoginCmd)
	auth.AuthCmd.AddCommand(auth.LogoutCmd)
	auth.AuthCmd.AddCommand(auth.StatusCmd)

	// Команды работы с постами
	rootCmd.AddCommand(post.PostCmd)
	post.PostCmd.AddCommand(post.ListCmd)
	post.PostCmd.AddCommand(post.ViewCmd)
	post.PostCmd.AddCommand(post.EditCmd)
	post.PostCmd.AddCommand(post.DiscardCmd)

	rootCmd.AddCommand(analyticsCmd)
	rootCmd.AddCommand(shellCmd)
}
