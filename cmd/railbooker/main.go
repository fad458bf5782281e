package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/KD4-Mahesh-92414/RailBooker/internal/app"
	"github.com/KD4-Mahesh-92414/RailBooker/internal/config"
)

func main() {
	// Local development convenience; a missing .env is not an error.
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
