package services

import (
	"context"
	"slices"
	"strings"

	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/models"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// WatchlistService mutates the watchList field of the authenticated
// user's own record. Symbols are normalized to uppercase before any
// comparison or write.
type WatchlistService struct {
	users UserStore
}

func NewWatchlistService(users UserStore) *WatchlistService {
	return &WatchlistService{users: users}
}

func (s *WatchlistService) loadUser(ctx context.Context, userID string) (*models.User, error) {
	id, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, httperr.New(httperr.KindNotFound, "user not found")
	}
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to load user", err)
	}
	if user == nil {
		return nil, httperr.New(httperr.KindNotFound, "user not found")
	}
	return user, nil
}

// Get returns the caller's watchlist, empty slice if none.
func (s *WatchlistService) Get(ctx context.Context, userID string) ([]string, error) {
	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if user.WatchList == nil {
		return []string{}, nil
	}
	return user.WatchList, nil
}

// Add appends the symbol to the caller's watchlist. Adding a symbol
// that is already present is a no-op, not an error.
func (s *WatchlistService) Add(ctx context.Context, userID, symbol string) ([]string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))
	if symbol == "" {
		return nil, httperr.New(httperr.KindValidation, "symbol is required")
	}

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	if slices.Contains(user.WatchList, symbol) {
		return user.WatchList, nil
	}

	user.WatchList = append(user.WatchList, symbol)
	if err := s.users.Save(ctx, user); err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to update watchlist", err)
	}
	return user.WatchList, nil
}

// Remove deletes all entries matching the symbol. Removing an absent
// symbol succeeds and returns the unchanged list.
func (s *WatchlistService) Remove(ctx context.Context, userID, symbol string) ([]string, error) {
	symbol = strings.ToUpper(strings.TrimSpace(symbol))

	user, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := slices.DeleteFunc(slices.Clone(user.WatchList), func(entry string) bool {
		return entry == symbol
	})
	if len(kept) == len(user.WatchList) {
		if user.WatchList == nil {
			return []string{}, nil
		}
		return user.WatchList, nil
	}

	user.WatchList = kept
	if err := s.users.Save(ctx, user); err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to update watchlist", err)
	}
	return user.WatchList, nil
}
