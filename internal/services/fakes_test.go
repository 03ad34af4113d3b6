package services

import (
	"context"
	"slices"

	"github.com/anshmehta/stockwatch/internal/models"
	"github.com/anshmehta/stockwatch/internal/store"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// fakeUserStore is an in-memory UserStore enforcing the same unique
// email constraint the Mongo index does.
type fakeUserStore struct {
	users map[primitive.ObjectID]models.User
	saves int
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[primitive.ObjectID]models.User{}}
}

func (f *fakeUserStore) FindByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.users {
		if u.Email == email {
			u.WatchList = slices.Clone(u.WatchList)
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	u, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	u.WatchList = slices.Clone(u.WatchList)
	return &u, nil
}

func (f *fakeUserStore) Create(_ context.Context, user *models.User) error {
	for _, u := range f.users {
		if u.Email == user.Email {
			return store.ErrDuplicateEmail
		}
	}
	f.users[user.ID] = *user
	return nil
}

func (f *fakeUserStore) Save(_ context.Context, user *models.User) error {
	f.users[user.ID] = *user
	f.saves++
	return nil
}

func (f *fakeUserStore) ListAll(_ context.Context) ([]models.User, error) {
	out := make([]models.User, 0, len(f.users))
	for _, u := range f.users {
		out = append(out, u)
	}
	return out, nil
}

// fakeTransactionStore is an in-memory TransactionStore returning
// newest-first listings like the Mongo sort does.
type fakeTransactionStore struct {
	txs []models.Transaction
}

func (f *fakeTransactionStore) Create(_ context.Context, tx *models.Transaction) error {
	f.txs = append(f.txs, *tx)
	return nil
}

func (f *fakeTransactionStore) FindByID(_ context.Context, id primitive.ObjectID) (*models.Transaction, error) {
	for _, tx := range f.txs {
		if tx.ID == id {
			return &tx, nil
		}
	}
	return nil, nil
}

func (f *fakeTransactionStore) ListByUser(_ context.Context, userID primitive.ObjectID) ([]models.Transaction, error) {
	var out []models.Transaction
	for i := len(f.txs) - 1; i >= 0; i-- {
		if f.txs[i].UserID == userID {
			out = append(out, f.txs[i])
		}
	}
	return out, nil
}

func (f *fakeTransactionStore) ListAll(_ context.Context) ([]models.Transaction, error) {
	out := make([]models.Transaction, 0, len(f.txs))
	for i := len(f.txs) - 1; i >= 0; i-- {
		out = append(out, f.txs[i])
	}
	return out, nil
}

func (f *fakeTransactionStore) UpdateStatus(_ context.Context, id primitive.ObjectID, status string) (bool, error) {
	for i := range f.txs {
		if f.txs[i].ID == id && f.txs[i].Status == models.StatusPending {
			f.txs[i].Status = status
			return true, nil
		}
	}
	return false, nil
}
