package main

import (
	"context"
	"log"
	"log/slog"
	"os"

	"github.com/kristinasrbinoska/blogtalks-vibe/internal/buildinfo"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/cli"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/client/config"
	"github.com/kristinasrbinoska/blogtalks-vibe/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn})))

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	app.Run(ctx)

}
