package services

import (
	"context"
	"strings"
	"time"

	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// TransactionStore is the persistence surface for paper-trading orders.
type TransactionStore interface {
	Create(ctx context.Context, tx *models.Transaction) error
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error)
	ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Transaction, error)
	ListAll(ctx context.Context) ([]models.Transaction, error)
	UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error)
}

// TransactionService places orders and lets admins decide on them.
type TransactionService struct {
	txs TransactionStore
}

func NewTransactionService(txs TransactionStore) *TransactionService {
	return &TransactionService{txs: txs}
}

// Place submits a buy or sell order for the caller. Orders start
// pending; only an admin decision moves them on.
func (s *TransactionService) Place(ctx context.Context, userID, orderType, symbol string, quantity int64, price float64) (*models.Transaction, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, httperr.New(httperr.KindNotFound, "user not found")
	}
	if orderType != models.OrderBuy && orderType != models.OrderSell {
		return nil, httperr.New(httperr.KindValidation, "order type must be buy or sell")
	}
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, httperr.New(httperr.KindValidation, "symbol is required")
	}
	if quantity <= 0 {
		return nil, httperr.New(httperr.KindValidation, "quantity must be positive")
	}
	if price <= 0 {
		return nil, httperr.New(httperr.KindValidation, "price must be positive")
	}

	tx := &models.Transaction{
		ID:        primitive.NewObjectID(),
		UserID:    uid,
		Type:      orderType,
		Symbol:    symbol,
		Quantity:  quantity,
		Price:     price,
		Status:    models.StatusPending,
		CreatedAt: time.Now(),
	}
	if err := s.txs.Create(ctx, tx); err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to submit order", err)
	}
	return tx, nil
}

// ListMine returns the caller's transactions, newest first.
func (s *TransactionService) ListMine(ctx context.Context, userID string) ([]models.Transaction, error) {
	uid, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, httperr.New(httperr.KindNotFound, "user not found")
	}
	txs, err := s.txs.ListByUser(ctx, uid)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to fetch transactions", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// ListAll returns every transaction for the admin panel.
func (s *TransactionService) ListAll(ctx context.Context) ([]models.Transaction, error) {
	txs, err := s.txs.ListAll(ctx)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to fetch transactions", err)
	}
	if txs == nil {
		txs = []models.Transaction{}
	}
	return txs, nil
}

// Decide approves or rejects a pending transaction. Deciding an
// already-decided transaction is a conflict.
func (s *TransactionService) Decide(ctx context.Context, txID, status string) (*models.Transaction, error) {
	id, err := primitive.ObjectIDFromHex(txID)
	if err != nil {
		return nil, httperr.New(httperr.KindValidation, "invalid transaction id")
	}
	if status != models.StatusApproved && status != models.StatusRejected {
		return nil, httperr.New(httperr.KindValidation, "status must be approved or rejected")
	}

	tx, err := s.txs.FindByID(ctx, id)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to update transaction", err)
	}
	if tx == nil {
		return nil, httperr.New(httperr.KindNotFound, "transaction not found")
	}
	if tx.Status != models.StatusPending {
		return nil, httperr.New(httperr.KindConflict, "only pending transactions can be updated")
	}

	updated, err := s.txs.UpdateStatus(ctx, id, status)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to update transaction", err)
	}
	if !updated {
		// Lost the race against another decision.
		return nil, httperr.New(httperr.KindConflict, "only pending transactions can be updated")
	}

	tx.Status = status
	return tx, nil
}
