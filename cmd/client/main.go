package main

import (
	"postdeck/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
