package services

import (
	"context"
	"testing"

	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

func newWatchlistService(t *testing.T) (*WatchlistService, *fakeUserStore, string) {
	t.Helper()
	users := newFakeUserStore()
	u := &models.User{
		ID:        primitive.NewObjectID(),
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@x.com",
		Role:      models.RoleUser,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return NewWatchlistService(users), users, u.ID.Hex()
}

func TestWatchlist_GetEmpty(t *testing.T) {
	svc, _, uid := newWatchlistService(t)

	list, err := svc.Get(context.Background(), uid)
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}

func TestWatchlist_AddNormalizesToUppercase(t *testing.T) {
	svc, _, uid := newWatchlistService(t)

	list, err := svc.Add(context.Background(), uid, "aapl")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, list)

	list, err = svc.Get(context.Background(), uid)
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, list)
}

func TestWatchlist_AddIsIdempotent(t *testing.T) {
	svc, users, uid := newWatchlistService(t)

	_, err := svc.Add(context.Background(), uid, "TSLA")
	require.NoError(t, err)
	savesAfterFirst := users.saves

	list, err := svc.Add(context.Background(), uid, "tsla")
	require.NoError(t, err)
	assert.Equal(t, []string{"TSLA"}, list)
	assert.Equal(t, savesAfterFirst, users.saves, "no-op add must not write")
}

func TestWatchlist_AddEmptySymbol(t *testing.T) {
	svc, _, uid := newWatchlistService(t)

	_, err := svc.Add(context.Background(), uid, "   ")
	requireKind(t, err, httperr.KindValidation)
}

func TestWatchlist_AddUnknownUser(t *testing.T) {
	svc, _, _ := newWatchlistService(t)

	_, err := svc.Add(context.Background(), primitive.NewObjectID().Hex(), "AAPL")
	requireKind(t, err, httperr.KindNotFound)

	_, err = svc.Add(context.Background(), "not-an-object-id", "AAPL")
	requireKind(t, err, httperr.KindNotFound)
}

func TestWatchlist_RemoveMatchesCaseInsensitively(t *testing.T) {
	svc, _, uid := newWatchlistService(t)

	_, err := svc.Add(context.Background(), uid, "TSLA")
	require.NoError(t, err)
	_, err = svc.Add(context.Background(), uid, "AAPL")
	require.NoError(t, err)

	list, err := svc.Remove(context.Background(), uid, "tsla")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, list)
}

func TestWatchlist_RemoveAbsentIsNoop(t *testing.T) {
	svc, users, uid := newWatchlistService(t)

	_, err := svc.Add(context.Background(), uid, "AAPL")
	require.NoError(t, err)
	savesBefore := users.saves

	list, err := svc.Remove(context.Background(), uid, "MSFT")
	require.NoError(t, err)
	assert.Equal(t, []string{"AAPL"}, list)
	assert.Equal(t, savesBefore, users.saves, "no-op remove must not write")
}

func TestWatchlist_RemoveFromEmptyList(t *testing.T) {
	svc, _, uid := newWatchlistService(t)

	list, err := svc.Remove(context.Background(), uid, "AAPL")
	require.NoError(t, err)
	assert.NotNil(t, list)
	assert.Empty(t, list)
}
