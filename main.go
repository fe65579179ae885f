package main

import (
	"fmt"
	"os"

	"construction-marketplace/internal/access"
	"construction-marketplace/internal/auth"
	"construction-marketplace/internal/config"
	market "construction-marketplace/internal/marketService"
	"construction-marketplace/internal/repository"
	"construction-marketplace/internal/server"
	"construction-marketplace/utils"

	"github.com/joho/godotenv"
)

func main() {

	// .env is optional; real deployments set the environment directly
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}
	utils.SetLevel(cfg.LogLevel)

	repo := repository.NewMemoryRepo()
	ctrl := access.NewController(cfg.SystemOwner)
	marketSvc := market.NewMarketService(repo, ctrl)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)

	router := server.SetupRouter(marketSvc, tokens)

	utils.Info("Starting marketplace server", map[string]any{
		"addr":         cfg.Addr(),
		"system_owner": cfg.SystemOwner,
	})
	if err := router.Run(cfg.Addr()); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to start server: %v\n", err)
		os.Exit(1)
	}
}
