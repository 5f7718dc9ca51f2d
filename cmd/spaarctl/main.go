// spaarctl is a terminal client for the SpaarBot finance tracker
package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/spaarbot/spaarctl/cmd/spaarctl/cmd"
)

func main() {
	_ = godotenv.Load()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
