// server/cmd/api/main.go
package main

import (
	"context"
	"log/slog"
	"os"
	"time"

	"github.com/channieraven/maechaem-DB-v2.1.0/config"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/api/routes"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/auth"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/database"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/socket"
	"github.com/channieraven/maechaem-DB-v2.1.0/internal/storage"

	"github.com/joho/godotenv"
	"github.com/lmittmann/tint"
)

func main() {
	slog.SetDefault(slog.New(tint.NewHandler(os.Stderr, &tint.Options{
		Level:      slog.LevelInfo,
		TimeFormat: time.Kitchen,
	})))

	if err := godotenv.Load(); err != nil {
		slog.Info("no .env file found, relying on environment")
	}

	// 1. Load configuration
	cfg, err := config.LoadConfig("./config")
	if err != nil {
		slog.Error("could not load config", "err", err)
		os.Exit(1)
	}

	auth.Init(cfg.JWT.Secret, cfg.JWT.Expiration)

	// 2. Connect to MongoDB
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	db, err := database.Connect(ctx, cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		slog.Error("failed to connect to MongoDB", "err", err)
		os.Exit(1)
	}
	store := database.NewMongoStore(db)

	// 3. Seed the species catalog on first boot
	if err := database.SeedSpecies(ctx, store); err != nil {
		slog.Error("failed to seed species catalog", "err", err)
		os.Exit(1)
	}

	// 4. Initialize the S3 uploader for plot images
	uploader, err := storage.NewUploader(cfg.S3)
	if err != nil {
		slog.Error("failed to initialize S3 uploader", "err", err)
		os.Exit(1)
	}

	// 5. Initialize the websocket hub for the live survey feed
	wsHub := socket.NewHub()

	// 6. Pass every shared component into the router
	router := routes.SetupRouter(store, uploader, wsHub)

	// 7. Start server
	slog.Info("starting API server", "port", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		slog.Error("failed to run server", "err", err)
		os.Exit(1)
	}
}
