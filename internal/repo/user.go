package repo

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/tahiratravels/backend/internal/domain"
)

// UserRepo defines the persistence operations for the identity store:
// users, roles and their user_roles join table.
type UserRepo interface {
	// Create inserts a user. Returns domain.ErrConflict if the e-mail is taken.
	Create(ctx context.Context, user domain.User) (domain.User, error)

	// GetByID retrieves a user by id. Returns domain.ErrNotFound if absent.
	GetByID(ctx context.Context, id string) (domain.User, error)

	// GetByEmail retrieves a user by e-mail, case-insensitively.
	// Returns domain.ErrNotFound if absent.
	GetByEmail(ctx context.Context, email string) (domain.User, error)

	// ListExcept returns every user whose id differs from userID
	// (compared case-insensitively), ordered by e-mail.
	ListExcept(ctx context.Context, userID string) ([]domain.User, error)

	// RolesFor returns the names of the roles userID belongs to, ordered by name.
	RolesFor(ctx context.Context, userID string) ([]string, error)

	// RoleExists reports whether a role with the given name exists.
	RoleExists(ctx context.Context, role string) (bool, error)

	// AddToRole puts userID in role. Idempotent: no error if already a member.
	AddToRole(ctx context.Context, userID, role string) error
}

// pgUserRepo is the Postgres implementation of UserRepo.
type pgUserRepo struct {
	db db
}

// NewUserRepo constructs a UserRepo backed by the provided db connection.
func NewUserRepo(db db) UserRepo {
	return &pgUserRepo{db: db}
}

const userColumns = `id, user_name, email, password_hash, created_at`

func (r *pgUserRepo) Create(ctx context.Context, user domain.User) (domain.User, error) {
	const q = `
		INSERT INTO users (id, user_name, email, password_hash)
		VALUES (@id, @user_name, @email, @password_hash)
		RETURNING ` + userColumns

	args := pgx.NamedArgs{
		"id":            user.ID,
		"user_name":     user.UserName,
		"email":         user.Email,
		"password_hash": user.PasswordHash,
	}

	result, err := scanUser(r.db.QueryRow(ctx, q, args))
	if err != nil {
		if isUniqueViolation(err) {
			return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", domain.ErrConflict)
		}
		return domain.User{}, fmt.Errorf("repo.UserRepo.Create: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByID(ctx context.Context, id string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE id = @id`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"id": id}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByID: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) GetByEmail(ctx context.Context, email string) (domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE lower(email) = lower(@email)`

	result, err := scanUser(r.db.QueryRow(ctx, q, pgx.NamedArgs{"email": email}))
	if err != nil {
		return domain.User{}, fmt.Errorf("repo.UserRepo.GetByEmail: %w", err)
	}
	return result, nil
}

func (r *pgUserRepo) ListExcept(ctx context.Context, userID string) ([]domain.User, error) {
	const q = `SELECT ` + userColumns + ` FROM users WHERE lower(id) <> lower(@user_id) ORDER BY email`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.ListExcept: %w", err)
	}
	users, err := collect(rows, scanUser)
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.ListExcept: scan: %w", err)
	}
	return users, nil
}

func (r *pgUserRepo) RolesFor(ctx context.Context, userID string) ([]string, error) {
	const q = `
		SELECT r.name
		FROM roles r
		JOIN user_roles ur ON ur.role_id = r.id
		WHERE ur.user_id = @user_id
		ORDER BY r.name`

	rows, err := r.db.Query(ctx, q, pgx.NamedArgs{"user_id": userID})
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.RolesFor: %w", err)
	}
	roles, err := collect(rows, func(s scanner) (string, error) {
		var name string
		err := s.Scan(&name)
		return name, err
	})
	if err != nil {
		return nil, fmt.Errorf("repo.UserRepo.RolesFor: scan: %w", err)
	}
	return roles, nil
}

func (r *pgUserRepo) RoleExists(ctx context.Context, role string) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM roles WHERE name = @name)`

	var exists bool
	if err := r.db.QueryRow(ctx, q, pgx.NamedArgs{"name": role}).Scan(&exists); err != nil {
		return false, fmt.Errorf("repo.UserRepo.RoleExists: %w", err)
	}
	return exists, nil
}

func (r *pgUserRepo) AddToRole(ctx context.Context, userID, role string) error {
	const q = `
		INSERT INTO user_roles (user_id, role_id)
		SELECT @user_id, id FROM roles WHERE name = @name
		ON CONFLICT (user_id, role_id) DO NOTHING`

	if _, err := r.db.Exec(ctx, q, pgx.NamedArgs{"user_id": userID, "name": role}); err != nil {
		return fmt.Errorf("repo.UserRepo.AddToRole: %w", err)
	}
	return nil
}

func scanUser(s scanner) (domain.User, error) {
	var u domain.User
	if err := s.Scan(&u.ID, &u.UserName, &u.Email, &u.PasswordHash, &u.CreatedAt); err != nil {
		return domain.User{}, notFound(err)
	}
	return u, nil
}
