package main

import (
	"os"

	"github.com/IrineSistiana/dlist/app"
	_ "github.com/IrineSistiana/dlist/app/replay"
)

var (
	version = "dev/unknown"
)

func main() {
	rootCmd := app.RootCmd()
	rootCmd.Version = version
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
