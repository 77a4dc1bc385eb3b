package main

import (
	"log"

	"github.com/labstack/echo/v4"

	"github.com/vinculo-app/backend/internal/router"
	"github.com/vinculo-app/backend/pkg/config"
	"github.com/vinculo-app/backend/pkg/validators"
)

func main() {
	cfg := config.Load()

	db, err := config.InitDB(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize databases: %v", err)
	}
	defer db.CloseDB()

	e := echo.New()
	e.Validator = validators.NewValidator()

	router.SetupMiddleware(e)
	router.SetupRoutes(e, db)

	log.Printf("Starting server on port %s (%s)", cfg.Port, cfg.Env)
	e.Logger.Fatal(e.Start(":" + cfg.Port))
}
