package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/medichain/backend/internal/server"
	"github.com/medichain/backend/internal/server/config"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	ctx := context.Background()
	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Printf("%v", err)
		return
	}

	app.Run(ctx)
}
