package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	OrderBuy  = "buy"
	OrderSell = "sell"
)

const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// Transaction is a paper-trading order. It is created pending and an
// admin moves it to approved or rejected; no other transition exists.
type Transaction struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	UserID    primitive.ObjectID `bson:"user_id" json:"userId"`
	Type      string             `bson:"type" json:"type"`
	Symbol    string             `bson:"symbol" json:"symbol"`
	Quantity  int64              `bson:"quantity" json:"quantity"`
	Price     float64            `bson:"price" json:"price"`
	Status    string             `bson:"status" json:"status"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
