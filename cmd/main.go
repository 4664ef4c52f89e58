package main

import (
	"context"
	"os"

	"carrental/config"
	"carrental/pkg/logger"
	"carrental/pkg/shell"
	"carrental/service"
	"carrental/storage/memory"
)

func main() {
	// 1. Load Config
	cfg := config.Load()

	// 2. Initialize Logger
	log := logger.New(cfg.ServiceName, cfg.LoggerLevel, cfg.LoggerOutput)

	ctx := context.Background()

	// 3. Initialize Storage (seeded in memory)
	store, err := memory.New(ctx, cfg, log)
	if err != nil {
		log.Error("Failed to initialize storage", logger.Error(err))
		os.Exit(1)
	}
	defer store.Close()

	// 4. Services
	svc := service.New(store, log)

	// 5. Interactive shell on the terminal
	sh := shell.New(&cfg, svc, log, os.Stdin, os.Stdout)
	if err := sh.Run(ctx); err != nil {
		log.Error("Shell terminated", logger.Error(err))
		store.Close()
		os.Exit(1)
	}
}
