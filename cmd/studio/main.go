package main

import (
	"fmt"
	"os"

	"github.com/mirae/creator-studio-go/internal/app"
	"github.com/mirae/creator-studio-go/internal/config"
	"github.com/mirae/creator-studio-go/internal/util"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := util.NewLogger(cfg.Logging.Level, cfg.Logging.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	container, err := app.Build(cfg, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to assemble services: %v\n", err)
		os.Exit(1)
	}
	defer container.Close()

	if err := newRootCommand(container).Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}
