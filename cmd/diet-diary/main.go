package main

import (
	"os"

	"github.com/joho/godotenv"

	"github.com/ktse/diet-diary/internal/cli"
)

func main() {
	// Optional; the DIET_DIARY_* path variables may come from a local .env.
	godotenv.Load()

	if err := cli.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
