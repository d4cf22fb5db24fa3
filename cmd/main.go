package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	log "github.com/sirupsen/logrus"

	"futures-bot/config"
	"futures-bot/core"
	"futures-bot/pkg/logging"
	"futures-bot/pkg/trader"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		fmt.Fprintln(os.Stderr, "BINANCE_API_KEY and BINANCE_SECRET_KEY must be set (env or .env file)")
		os.Exit(1)
	}
	if err := cfg.ApplyFile(config.DefaultConfigFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger, logCloser, err := logging.Setup(cfg.Log.Level, cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer logCloser.Close()

	// root context cancelled on SIGINT/SIGTERM
	rootCtx, cancel := context.WithCancel(context.Background())
	defer cancel()
	setupSignalHandler(logger, cancel)

	tr, err := trader.New(cfg.Binance.APIKey, cfg.Binance.SecretKey, cfg.Binance.BaseURL, logger)
	if err != nil {
		logger.Errorf("fail to initialize trader: %v", err)
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}

	args := os.Args[1:]
	if len(args) == 0 {
		core.Menu(rootCtx, tr, cfg)
		return
	}

	if err := core.Run(rootCtx, tr, cfg, args); err != nil {
		fmt.Fprintf(os.Stderr, "\nError: %v\n", err)
		os.Exit(1)
	}
}

func setupSignalHandler(logger *log.Logger, cancel context.CancelFunc) {
	sigC := make(chan os.Signal, 1)
	signal.Notify(sigC, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigC
		logger.Info("received shutdown signal")
		cancel()
	}()
}
