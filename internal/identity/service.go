// Package identity manages user accounts: wallet-keyed registration,
// profile updates and the points ledger.
package identity

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/orbitwatch/debris-tracker/internal/adapter"
	"github.com/orbitwatch/debris-tracker/internal/domain"
	"github.com/orbitwatch/debris-tracker/internal/store"
	"github.com/orbitwatch/debris-tracker/internal/store/schema"
)

// CreateInput carries the fields for a new user account
type CreateInput struct {
	WalletAddress string
	Email         *string
	Password      *string
	Role          domain.Role
	AvatarURL     *string
}

// UpdateInput carries optional in-place profile changes; nil fields are left
// untouched. Points are excluded on purpose: AddPoints is the only mutation
// path for them.
type UpdateInput struct {
	Email     *string
	Password  *string
	Role      *domain.Role
	AvatarURL *string
}

// Service owns user accounts
type Service struct {
	store store.Store
	clock adapter.Clock
}

// NewService creates an identity service
func NewService(s store.Store, clock adapter.Clock) *Service {
	return &Service{store: s, clock: clock}
}

// Create registers a new user. Duplicate wallet address or email fails with
// domain.ErrConflict.
func (s *Service) Create(ctx context.Context, in CreateInput) (*schema.User, error) {
	if in.WalletAddress == "" {
		return nil, fmt.Errorf("%w: wallet address is required", domain.ErrInvalidInput)
	}
	role := in.Role
	if role == "" {
		role = domain.RoleUser
	}
	if !role.Valid() {
		return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, in.Role)
	}

	existing, err := s.store.GetUserByWallet(ctx, in.WalletAddress)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: wallet address %s already registered", domain.ErrConflict, in.WalletAddress)
	}

	if in.Email != nil {
		existing, err = s.store.GetUserByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email %s already in use", domain.ErrConflict, *in.Email)
		}
	}

	var passwordHash *string
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		passwordHash = &hashed
	}

	user := &schema.User{
		ID:            uuid.NewString(),
		WalletAddress: in.WalletAddress,
		Email:         in.Email,
		PasswordHash:  passwordHash,
		Role:          role,
		AvatarURL:     in.AvatarURL,
		JoinedAt:      s.clock.Now(),
	}
	if err := s.store.CreateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Get loads a user by id, domain.ErrNotFound when absent
func (s *Service) Get(ctx context.Context, id string) (*schema.User, error) {
	user, err := s.store.GetUserByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return user, nil
}

// ByWallet loads a user by wallet address
func (s *Service) ByWallet(ctx context.Context, wallet string) (*schema.User, error) {
	user, err := s.store.GetUserByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: wallet address %s", domain.ErrNotFound, wallet)
	}
	return user, nil
}

// List returns all users
func (s *Service) List(ctx context.Context) ([]schema.User, error) {
	return s.store.ListUsers(ctx)
}

// Update applies in-place profile changes. A new email must not collide with
// another account.
func (s *Service) Update(ctx context.Context, id string, in UpdateInput) (*schema.User, error) {
	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if in.Email != nil && (user.Email == nil || *in.Email != *user.Email) {
		existing, err := s.store.GetUserByEmail(ctx, *in.Email)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return nil, fmt.Errorf("%w: email %s already in use", domain.ErrConflict, *in.Email)
		}
		user.Email = in.Email
	}
	if in.Password != nil {
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		hashed := string(hash)
		user.PasswordHash = &hashed
	}
	if in.Role != nil {
		if !in.Role.Valid() {
			return nil, fmt.Errorf("%w: unknown role %q", domain.ErrInvalidInput, *in.Role)
		}
		user.Role = *in.Role
	}
	if in.AvatarURL != nil {
		user.AvatarURL = in.AvatarURL
	}

	if err := s.store.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// Delete removes a user account
func (s *Service) Delete(ctx context.Context, id string) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.store.DeleteUser(ctx, id)
}

// AddPoints increments a user's points. Points are monotonically
// non-decreasing: a negative delta is rejected.
func (s *Service) AddPoints(ctx context.Context, id string, points int) (*schema.User, error) {
	if points < 0 {
		return nil, fmt.Errorf("%w: points delta must not be negative", domain.ErrInvalidInput)
	}

	user, err := s.store.AddUserPoints(ctx, id, points)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, fmt.Errorf("%w: user %s", domain.ErrNotFound, id)
	}
	return user, nil
}

// VerifyPassword checks a password login attempt against the stored hash
func (s *Service) VerifyPassword(ctx context.Context, wallet, password string) (*schema.User, error) {
	user, err := s.ByWallet(ctx, wallet)
	if err != nil {
		return nil, err
	}
	if user.PasswordHash == nil {
		return nil, fmt.Errorf("%w: account has no password login", domain.ErrInvalidInput)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(*user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: password mismatch", domain.ErrInvalidInput)
	}
	return user, nil
}
