package handlers

import (
	"strings"

	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/services"
	"github.com/gofiber/fiber/v2"
)

// StockHandler exposes the quote search proxy and the watchlist CRUD.
type StockHandler struct {
	quotes     services.QuoteProvider
	watchlists *services.WatchlistService
}

func NewStockHandler(quotes services.QuoteProvider, watchlists *services.WatchlistService) *StockHandler {
	return &StockHandler{quotes: quotes, watchlists: watchlists}
}

func callerID(c *fiber.Ctx) (string, error) {
	userID, ok := c.Locals("user_id").(string)
	if !ok || userID == "" {
		return "", httperr.New(httperr.KindInvalidToken, "invalid token payload")
	}
	return userID, nil
}

// Search proxies the symbol lookup to the market-data provider and
// passes the provider JSON through untouched.
func (h *StockHandler) Search(c *fiber.Ctx) error {
	symbol := strings.TrimSpace(c.Params("symbol"))
	if symbol == "" {
		return httperr.New(httperr.KindValidation, "invalid or empty stock symbol")
	}

	body, err := h.quotes.Quote(symbol)
	if err != nil {
		return err
	}
	return c.Type("json").Send(body)
}

func (h *StockHandler) GetWatchlist(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	list, err := h.watchlists.Get(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"watchList": list})
}

func (h *StockHandler) AddToWatchlist(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req struct {
		Symbol string `json:"symbol"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httperr.New(httperr.KindValidation, "invalid request body")
	}

	list, err := h.watchlists.Add(c.Context(), userID, req.Symbol)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "added to watchlist", "watchList": list})
}

func (h *StockHandler) RemoveFromWatchlist(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	list, err := h.watchlists.Remove(c.Context(), userID, c.Params("symbol"))
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "removed from watchlist", "watchList": list})
}
