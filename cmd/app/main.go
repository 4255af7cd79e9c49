package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"

	"CryptoPulse/internal/di"
	"CryptoPulse/pkg/config"
)

func main() {
	// Parse flags
	configPath := flag.String("config", "config/config.yaml", "config file path")
	dryRun := flag.Bool("dry-run", false, "fetch and analyze but skip icon downloads")
	flag.Parse()

	// Optional .env for local overrides
	_ = godotenv.Load()

	// Load config
	cfg, err := config.LoadWithEnv(*configPath)
	if err != nil {
		log.Fatalf("config load failed: %v", err)
	}

	log.Printf("env=%s top_n=%d output=%s", cfg.Environment, cfg.API.TopN, cfg.Paths.OutputFile)

	// Wire DI: Initialize all dependencies
	app, err := di.InitializeApp(cfg)
	if err != nil {
		log.Fatalf("app initialization failed: %v", err)
	}
	app.DryRun = *dryRun

	// Run pipeline (blocks until done or signalled)
	if err := app.Run(); err != nil {
		os.Exit(1)
	}
}
