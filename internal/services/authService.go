package services

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/anshmehta/stockwatch/internal/httperr"
	"github.com/anshmehta/stockwatch/internal/models"
	"github.com/anshmehta/stockwatch/internal/store"
	"github.com/anshmehta/stockwatch/internal/token"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

// UserStore is the persistence surface the services need from the
// credential store.
type UserStore interface {
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
	Create(ctx context.Context, user *models.User) error
	Save(ctx context.Context, user *models.User) error
	ListAll(ctx context.Context) ([]models.User, error)
}

// HashPassword hashes a password using bcrypt at the default cost (10).
func HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	return string(hash), err
}

// VerifyPassword compares a plain password with a stored hash. A
// malformed hash counts as a mismatch.
func VerifyPassword(password, hash string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)) == nil
}

// AuthService handles signup, login and the admin user listing.
type AuthService struct {
	users  UserStore
	tokens *token.Manager
}

func NewAuthService(users UserStore, tokens *token.Manager) *AuthService {
	return &AuthService{users: users, tokens: tokens}
}

// Signup registers a new user. Email uniqueness is enforced by the
// storage-level index; the duplicate-key error is mapped to a conflict.
// No token is issued, login is a separate step.
func (s *AuthService) Signup(ctx context.Context, firstName, lastName, email, password string) error {
	firstName = strings.TrimSpace(firstName)
	lastName = strings.TrimSpace(lastName)
	email = strings.TrimSpace(email)
	if firstName == "" || lastName == "" || email == "" || password == "" {
		return httperr.New(httperr.KindValidation, "all fields are required")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return httperr.Wrap(httperr.KindInternal, "error creating user", err)
	}

	user := &models.User{
		ID:        primitive.NewObjectID(),
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  hash,
		Role:      models.RoleUser,
		WatchList: []string{},
		CreatedAt: time.Now(),
	}

	if err := s.users.Create(ctx, user); err != nil {
		if errors.Is(err, store.ErrDuplicateEmail) {
			return httperr.New(httperr.KindConflict, "user with that email already exists")
		}
		return httperr.Wrap(httperr.KindInternal, "error creating user", err)
	}
	return nil
}

// Login authenticates a user and returns a signed token together with
// the user record for the public profile projection.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *models.User, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return "", nil, httperr.New(httperr.KindValidation, "all fields are required")
	}

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", nil, httperr.Wrap(httperr.KindInternal, "error logging in", err)
	}
	if user == nil {
		return "", nil, httperr.New(httperr.KindNotFound, "user with that email doesn't exist")
	}

	if !VerifyPassword(password, user.Password) {
		return "", nil, httperr.New(httperr.KindInvalidCredentials, "invalid credentials")
	}

	signed, err := s.tokens.Issue(user.ID.Hex(), user.Role)
	if err != nil {
		return "", nil, httperr.Wrap(httperr.KindInternal, "error logging in", err)
	}
	return signed, user, nil
}

// ListUsers returns all registered users for the admin panel. Password
// hashes stay out of the response via the model's json tags.
func (s *AuthService) ListUsers(ctx context.Context) ([]models.User, error) {
	users, err := s.users.ListAll(ctx)
	if err != nil {
		return nil, httperr.Wrap(httperr.KindInternal, "failed to fetch users", err)
	}
	return users, nil
}
