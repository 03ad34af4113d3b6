package handlers

import (
	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/services"
	"github.com/gofiber/fiber/v2"
)

// TransactionHandler exposes order placement for users and the
// approve/reject endpoints for admins.
type TransactionHandler struct {
	txs *services.TransactionService
}

func NewTransactionHandler(txs *services.TransactionService) *TransactionHandler {
	return &TransactionHandler{txs: txs}
}

// Place submits a buy or sell order; the type comes from the route.
func (h *TransactionHandler) Place(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	var req struct {
		Symbol   string  `json:"symbol"`
		Quantity int64   `json:"quantity"`
		Price    float64 `json:"price"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httperr.New(httperr.KindValidation, "invalid request body")
	}

	tx, err := h.txs.Place(c.Context(), userID, c.Params("type"), req.Symbol, req.Quantity, req.Price)
	if err != nil {
		return err
	}
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{"message": "order submitted successfully", "transaction": tx})
}

func (h *TransactionHandler) ListMine(c *fiber.Ctx) error {
	userID, err := callerID(c)
	if err != nil {
		return err
	}

	txs, err := h.txs.ListMine(c.Context(), userID)
	if err != nil {
		return err
	}
	return c.JSON(txs)
}

func (h *TransactionHandler) ListAll(c *fiber.Ctx) error {
	txs, err := h.txs.ListAll(c.Context())
	if err != nil {
		return err
	}
	return c.JSON(txs)
}

// Decide approves or rejects a pending order.
func (h *TransactionHandler) Decide(c *fiber.Ctx) error {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.BodyParser(&req); err != nil {
		return httperr.New(httperr.KindValidation, "invalid request body")
	}

	tx, err := h.txs.Decide(c.Context(), c.Params("id"), req.Status)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"message": "transaction updated", "transaction": tx})
}
