package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

// Messages returned by AssignRole; clients display them verbatim.
const (
	msgUserMissing     = "User does not exist!"
	msgRoleInvalid     = "Selected role is not a valid role!"
	msgRoleAssignError = "Unexpected error occurred while adding the user to role! Please try again later!"
)

// UserService implements the admin user-management board.
type UserService struct {
	users repo.UserRepo
}

// NewUserService constructs a UserService backed by the provided repo.
func NewUserService(users repo.UserRepo) *UserService {
	return &UserService{users: users}
}

// ManagementBoard lists every user except callerID together with their roles.
func (s *UserService) ManagementBoard(ctx context.Context, callerID string) ([]domain.UserWithRoles, error) {
	users, err := s.users.ListExcept(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("service.UserService.ManagementBoard: %w", err)
	}

	board := make([]domain.UserWithRoles, 0, len(users))
	for _, u := range users {
		roles, err := s.users.RolesFor(ctx, u.ID)
		if err != nil {
			return nil, fmt.Errorf("service.UserService.ManagementBoard: %w", err)
		}
		if roles == nil {
			roles = []string{}
		}
		board = append(board, domain.UserWithRoles{ID: u.ID, Email: u.Email, Roles: roles})
	}
	return board, nil
}

// AssignRole adds a user to a role and reports true on success.
// Returns domain.ErrNotFound if the user does not exist, domain.ErrValidation
// if the role does not exist, and domain.ErrInfrastructure (with the cause
// preserved) if the store fails while adding the membership.
// Roles are carried in bearer tokens, so the user sees the new role after
// their next login.
func (s *UserService) AssignRole(ctx context.Context, a domain.RoleAssignment) (bool, error) {
	if err := validateStruct(a); err != nil {
		return false, fmt.Errorf("service.UserService.AssignRole: %w", err)
	}

	if _, err := s.users.GetByID(ctx, a.UserID); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return false, domain.WrapError(domain.ErrNotFound, msgUserMissing, err)
		}
		return false, fmt.Errorf("service.UserService.AssignRole: %w", err)
	}

	ok, err := s.users.RoleExists(ctx, a.Role)
	if err != nil {
		return false, fmt.Errorf("service.UserService.AssignRole: %w", err)
	}
	if !ok {
		return false, domain.NewError(domain.ErrValidation, msgRoleInvalid)
	}

	if err := s.users.AddToRole(ctx, a.UserID, a.Role); err != nil {
		return false, domain.WrapError(domain.ErrInfrastructure, msgRoleAssignError, err)
	}
	return true, nil
}
