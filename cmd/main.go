package main

import (
	"log"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"github.com/g-67560126-commits/e-Asrama/config"
	"github.com/g-67560126-commits/e-Asrama/database"
	"github.com/g-67560126-commits/e-Asrama/events"
	"github.com/g-67560126-commits/e-Asrama/handlers"
	"github.com/g-67560126-commits/e-Asrama/notify"
	"github.com/g-67560126-commits/e-Asrama/routes"
)

func main() {
	cfg := config.Load()

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}

	hub := events.NewHub()
	notifier := notify.NewGeminiNotifier(cfg.GeminiAPIKey, cfg.GeminiModel)

	e := echo.New()
	e.HideBanner = true
	e.Validator = handlers.NewValidator()
	e.Use(middleware.Recover())
	e.Use(middleware.Logger())
	e.Use(middleware.CORS())

	routes.Register(e, db, hub, notifier, cfg)

	addr := ":" + cfg.AppPort
	log.Printf("server listening at %s", addr)
	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
