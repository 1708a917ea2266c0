package main

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/neppath/convoybot/internal/app"
	"github.com/neppath/convoybot/internal/config"
)

func main() {
	// Missing .env is fine, config falls back to the environment.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("app init: %v", err)
	}

	if err = application.Run(); err != nil {
		log.Fatalf("app run: %v", err)
	}
}
