package main

import (
	"log"

	"github.com/abu0717/canteen/configs"
	"github.com/abu0717/canteen/routes"
	"github.com/abu0717/canteen/ws"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectDB(cfg)
	if err != nil {
		log.Fatalf("connect db failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}

	// one registry for the whole process, injected everywhere
	registry := ws.NewRegistry()

	// HTTP
	r := gin.Default()
	routes.RegisterRoutes(r, db, cfg, registry)

	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
