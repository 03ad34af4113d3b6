package store

import (
	"context"
	"errors"
	"fmt"

	"github.com/anshmehta/stockwatch/internal/models"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// TransactionStore persists paper-trading orders.
type TransactionStore struct {
	col *mongo.Collection
}

func NewTransactionStore(db *mongo.Database) *TransactionStore {
	return &TransactionStore{col: db.Collection("transactions")}
}

func (s *TransactionStore) Create(ctx context.Context, tx *models.Transaction) error {
	_, err := s.col.InsertOne(ctx, tx)
	if err != nil {
		return fmt.Errorf("failed to insert transaction: %w", err)
	}
	return nil
}

func (s *TransactionStore) FindByID(ctx context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	var tx models.Transaction
	err := s.col.FindOne(ctx, bson.M{"_id": id}).Decode(&tx)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return &tx, nil
}

// ListByUser returns the user's transactions, newest first.
func (s *TransactionStore) ListByUser(ctx context.Context, userID primitive.ObjectID) ([]models.Transaction, error) {
	return s.list(ctx, bson.M{"user_id": userID})
}

// ListAll returns every transaction, newest first.
func (s *TransactionStore) ListAll(ctx context.Context) ([]models.Transaction, error) {
	return s.list(ctx, bson.M{})
}

func (s *TransactionStore) list(ctx context.Context, filter bson.M) ([]models.Transaction, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := s.col.Find(ctx, filter, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer cursor.Close(ctx)

	var txs []models.Transaction
	if err := cursor.All(ctx, &txs); err != nil {
		return nil, fmt.Errorf("failed to decode transactions: %w", err)
	}
	return txs, nil
}

// UpdateStatus moves a pending transaction to the given status. It
// reports whether a pending document was actually updated, so a
// concurrent decision loses cleanly instead of overwriting.
func (s *TransactionStore) UpdateStatus(ctx context.Context, id primitive.ObjectID, status string) (bool, error) {
	res, err := s.col.UpdateOne(ctx,
		bson.M{"_id": id, "status": models.StatusPending},
		bson.M{"$set": bson.M{"status": status}},
	)
	if err != nil {
		return false, fmt.Errorf("failed to update transaction status: %w", err)
	}
	return res.ModifiedCount > 0, nil
}
