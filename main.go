// main.go
package main

import (
	"os"
	"youtube_etl/infrastructure/config"
	"youtube_etl/internal/handler/console"

	"github.com/urfave/cli"
)

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		console.PrintError(os.Stderr, err)
		os.Exit(1)
	}

	app := cli.NewApp()
	app.Name = "youtube_etl"
	app.Usage = "Exports a YouTube channel's videos to CSV and uploads the file to S3"
	app.Flags = config.RegisterFlags(app.Flags)
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		console.PrintError(os.Stderr, err)
		os.Exit(1)
	}
}
