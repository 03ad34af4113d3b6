package router

import (
	"github.com/anshmehta/stockwatch/internal/handlers"
	"github.com/anshmehta/stockwatch/internal/middleware"
	"github.com/anshmehta/stockwatch/internal/token"
	"github.com/gofiber/fiber/v2"
)

// Handlers bundles everything the route table needs.
type Handlers struct {
	Auth         *handlers.AuthHandler
	Stocks       *handlers.StockHandler
	Transactions *handlers.TransactionHandler
}

// Setup registers the full API surface on the app. Shared by main and
// the handler tests so both exercise the same routing and middleware.
func Setup(app *fiber.App, tokens *token.Manager, h Handlers) {
	authn := middleware.Auth(tokens)
	adminOnly := middleware.AdminOnly()

	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/signup", h.Auth.Signup)
	auth.Post("/login", h.Auth.Login)
	auth.Get("/users", authn, adminOnly, h.Auth.ListUsers)

	stocks := api.Group("/stocks")
	stocks.Get("/search/:symbol", h.Stocks.Search)
	stocks.Get("/watchlist", authn, h.Stocks.GetWatchlist)
	stocks.Post("/watchlist", authn, h.Stocks.AddToWatchlist)
	stocks.Delete("/watchlist/:symbol", authn, h.Stocks.RemoveFromWatchlist)

	txs := api.Group("/transactions", authn)
	txs.Get("/", h.Transactions.ListMine)
	txs.Get("/all", adminOnly, h.Transactions.ListAll)
	txs.Post("/:type", h.Transactions.Place)
	txs.Patch("/:id", adminOnly, h.Transactions.Decide)
}
