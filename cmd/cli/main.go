package main

import (
	"context"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/bluemoon/stockkeeper/internal/app"
	"github.com/bluemoon/stockkeeper/internal/buildinfo"
	"github.com/bluemoon/stockkeeper/internal/config"
	"github.com/bluemoon/stockkeeper/internal/logging"
)

func main() {

	buildinfo.PrintBuildData(os.Stdout)

	// optional .env next to the binary; absence is fine
	_ = godotenv.Load()

	ctx := context.Background()
	cfg := config.LoadConfig()

	logger := logging.NewRotatingFile(cfg.LogFile, logging.ParseLevel(cfg.LogLevel))

	a, err := app.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
		return
	}

	a.Run(ctx)
}
