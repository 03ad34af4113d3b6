package main

import (
	"context"
	"log"

	"github.com/anshmehta/stockwatch/internal/config"
	"github.com/anshmehta/stockwatch/internal/db"
	"github.com/anshmehta/stockwatch/internal/handlers"
	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/logger"
	"github.com/anshmehta/stockwatch/internal/router"
	"github.com/anshmehta/stockwatch/internal/services"
	"github.com/anshmehta/stockwatch/internal/store"
	"github.com/anshmehta/stockwatch/internal/token"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found or error loading it, using environment variables")
	}

	cfg, err := config.New()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logg := logger.New(cfg.LogLevel)

	database, err := db.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		logg.Fatal("database setup failed", "error", err)
	}

	users := store.NewUserStore(database)
	if err := users.EnsureIndexes(context.Background()); err != nil {
		logg.Fatal("database setup failed", "error", err)
	}
	txs := store.NewTransactionStore(database)

	tokens := token.NewManager(cfg.JWT.Secret)
	authSvc := services.NewAuthService(users, tokens)
	watchlists := services.NewWatchlistService(users)
	quotes := services.NewTwelveData(cfg.MarketData.BaseURL, cfg.MarketData.APIKey)
	txSvc := services.NewTransactionService(txs)

	app := fiber.New(fiber.Config{
		ErrorHandler: httperr.Handler(logg),
	})
	app.Use(fiberlogger.New())
	app.Use(cors.New())
	app.Use(requestid.New())

	router.Setup(app, tokens, router.Handlers{
		Auth:         handlers.NewAuthHandler(authSvc),
		Stocks:       handlers.NewStockHandler(quotes, watchlists),
		Transactions: handlers.NewTransactionHandler(txSvc),
	})

	logg.Info("starting server", "port", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		logg.Fatal("server stopped", "error", err)
	}
}
