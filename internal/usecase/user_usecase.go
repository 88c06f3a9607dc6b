package usecase

import (
	"context"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/iho/gobank/internal/domain"
	"github.com/iho/gobank/internal/infrastructure/metrics"
)

// UserUseCase handles registration and credential verification. The ledger
// core never sees credentials; it only consumes the user ID this layer vouches
// for.
type UserUseCase struct {
	users UserRepository
	ids   domain.IDGenerator
}

// NewUserUseCase creates a new UserUseCase.
func NewUserUseCase(users UserRepository, ids domain.IDGenerator) *UserUseCase {
	return &UserUseCase{
		users: users,
		ids:   ids,
	}
}

// RegisterInput represents input for registering a user.
type RegisterInput struct {
	Username string
	Password string
}

// Register creates a new user with a bcrypt-hashed password.
func (uc *UserUseCase) Register(ctx context.Context, input RegisterInput) (*domain.User, error) {
	username := strings.TrimSpace(input.Username)

	if err := domain.ValidateUsername(username); err != nil {
		return nil, err
	}
	if err := domain.ValidatePassword(input.Password); err != nil {
		return nil, err
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &domain.User{
		ID:             uc.ids.Generate(),
		Username:       username,
		HashedPassword: string(hashed),
		CreatedAt:      time.Now().UTC(),
	}

	if err := uc.users.Create(ctx, user); err != nil {
		return nil, err
	}

	metrics.UsersRegistered.Inc()

	// Never hand the hash back to callers.
	out := *user
	out.HashedPassword = ""
	return &out, nil
}

// Authenticate verifies a username/password pair and returns the user.
func (uc *UserUseCase) Authenticate(ctx context.Context, username, password string) (*domain.User, error) {
	user, err := uc.users.GetByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return nil, domain.ErrInvalidCredentials
	}

	out := *user
	out.HashedPassword = ""
	return &out, nil
}

// GetUser retrieves a user by ID.
func (uc *UserUseCase) GetUser(ctx context.Context, id string) (*domain.User, error) {
	user, err := uc.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	out := *user
	out.HashedPassword = ""
	return &out, nil
}
