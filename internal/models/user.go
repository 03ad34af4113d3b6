package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "User"
	RoleAdmin = "Admin"
)

// User is a registered account. Password holds the bcrypt hash and is
// never serialized to JSON. WatchList entries are always stored
// uppercase.
type User struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	FirstName string             `bson:"firstName" json:"firstName"`
	LastName  string             `bson:"lastName" json:"lastName"`
	Email     string             `bson:"email" json:"email"`
	Password  string             `bson:"password" json:"-"`
	Role      string             `bson:"role" json:"role"`
	WatchList []string           `bson:"watchList" json:"watchList"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
}
