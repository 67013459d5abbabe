package main

import (
	"context"

	_ "kanban/docs"
	"kanban/internal/config"
	"kanban/internal/server"

	log "github.com/sirupsen/logrus"
)

// @title           Kanban Board API
// @version         1.0
// @description     Single-board kanban service with drag and drop support.

// @host      localhost:8080
// @BasePath  /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

// @schemes http
func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Invalid configuration: %v", err)
	}
	log.SetLevel(cfg.LogLevel)

	s, err := server.Init(context.Background(), cfg)
	if err != nil {
		log.Fatalf("❌ Server initialization failed: %v", err)
	}

	s.Run()
}
