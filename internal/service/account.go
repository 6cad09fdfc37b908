package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

const msgBadCredentials = "Invalid e-mail or password."

// TokenIssuer signs access tokens for authenticated principals.
type TokenIssuer interface {
	Issue(p auth.Principal) (string, error)
}

// AccountService registers users and exchanges credentials for tokens.
type AccountService struct {
	users  repo.UserRepo
	tokens TokenIssuer
}

// NewAccountService constructs an AccountService.
func NewAccountService(users repo.UserRepo, tokens TokenIssuer) *AccountService {
	return &AccountService{users: users, tokens: tokens}
}

// Register creates a user whose user name is their e-mail address and adds
// them to the User role. The address is stored lower-cased.
// Returns domain.ErrValidation for malformed credentials or a taken e-mail.
func (s *AccountService) Register(ctx context.Context, c domain.Credentials) (domain.User, error) {
	c.Email = domain.NormalizeEmail(c.Email)
	if err := validateStruct(c); err != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}

	hash, err := auth.HashPassword(c.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{
		ID:           uuid.NewString(),
		UserName:     c.Email,
		Email:        c.Email,
		PasswordHash: hash,
	})
	if err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return domain.User{}, fmt.Errorf("service.AccountService.Register: %w",
				domain.WrapError(domain.ErrValidation, "E-mail '"+c.Email+"' is already taken.", err))
		}
		return domain.User{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}

	if err := s.users.AddToRole(ctx, user.ID, domain.RoleUser); err != nil {
		return domain.User{}, fmt.Errorf("service.AccountService.Register: %w", err)
	}
	return user, nil
}

// Login checks credentials and returns a signed token for the user.
// Returns domain.ErrUnauthorized for an unknown e-mail or a wrong password;
// the two cases are indistinguishable to the caller.
func (s *AccountService) Login(ctx context.Context, c domain.Credentials) (string, error) {
	user, err := s.users.GetByEmail(ctx, domain.NormalizeEmail(c.Email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return "", domain.NewError(domain.ErrUnauthorized, msgBadCredentials)
		}
		return "", fmt.Errorf("service.AccountService.Login: %w", err)
	}
	if !auth.CheckPassword(user.PasswordHash, c.Password) {
		return "", domain.NewError(domain.ErrUnauthorized, msgBadCredentials)
	}

	roles, err := s.users.RolesFor(ctx, user.ID)
	if err != nil {
		return "", fmt.Errorf("service.AccountService.Login: %w", err)
	}

	token, err := s.tokens.Issue(auth.Principal{UserID: user.ID, UserName: user.UserName, Roles: roles})
	if err != nil {
		return "", fmt.Errorf("service.AccountService.Login: %w", err)
	}
	return token, nil
}
