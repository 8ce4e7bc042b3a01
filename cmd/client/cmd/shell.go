// cmd/client/cmd/shell.go
package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"postdeck/cmd/client/cmd/types"
	"postdeck/internal/app/client"
	"postdeck/internal/domain/session"
	"postdeck/internal/router"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Интерактивный режим",
	Long: `Команда shell запускает интерактивную сессию. Внутри неё доступна
навигация между экранами, вход и выход, а также редактирование постов
без перезапуска клиента.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		app, ok := cmd.Context().Value(types.ClientAppKey).(*client.App)
		if !ok || app == nil {
			return fmt.Errorf("application is not initialized")
		}

		app.Start("")
		runShell(app, bufio.NewScanner(os.Stdin))
		return nil
	},
}

// runShell reads lines from the scanner and dispatches them against the
// application until EOF or an explicit quit. Command errors are printed
// and the loop keeps going.
func runShell(app *client.App, scanner *bufio.Scanner) {
	prompt := color.New(color.FgCyan)

	for {
		prompt.Printf("postdeck [%s]> ", app.Title())
		if !scanner.Scan() {
			fmt.Println()
			return
		}
		parts := strings.Fields(scanner.Text())
		if len(parts) == 0 {
			continue
		}

		switch parts[0] {
		case "help":
			printShellHelp()

		case "go":
			if len(parts) < 2 {
				fmt.Println("usage: go <route>, e.g. go posts or go detail?id=3")
				continue
			}
			app.Navigate(splitFragment(parts[1]))

		case "back":
			app.Back()

		case "login":
			if len(parts) != 4 {
				fmt.Println("usage: login <company-code> <region> <email>")
				continue
			}
			if err := app.Login(parts[1], session.Region(parts[2]), parts[3]); err != nil {
				fmt.Println("login failed:", err)
			}

		case "logout":
			app.Logout()

		case "edit":
			if len(parts) < 3 {
				fmt.Println("usage: edit title|body <text>")
				continue
			}
			text := strings.Join(parts[2:], " ")
			var err error
			switch parts[1] {
			case "title":
				err = app.EditTitle(text)
			case "body":
				err = app.EditBody(text)
			default:
				err = fmt.Errorf("unknown field %q, expected title or body", parts[1])
			}
			if err != nil {
				fmt.Println("edit failed:", err)
			}

		case "save":
			if err := app.Save(); err != nil {
				fmt.Println("save failed:", err)
			}

		case "discard":
			app.DiscardEdits()

		case "exit", "quit":
			fmt.Println("Bye!")
			return

		default:
			fmt.Println("Unknown command:", parts[0])
		}
	}
}

func printShellHelp() {
	fmt.Println(`Commands:
  go <route>                  open a screen: login, posts, posts?userId=2, detail?id=3, analytics
  back                        return to the previous screen
  login <code> <region> <email>
  logout
  edit title|body <text>      stage an edit on the open post
  save                        flush staged edits now
  discard                     drop all local edits
  help
  exit | quit`)
}

// splitFragment adapts a raw route string to Navigate's path/params pair.
func splitFragment(fragment string) (string, map[string]string, bool) {
	path, params := router.ParseFragment(fragment)
	return path, params, false
}
