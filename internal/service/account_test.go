package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahiratravels/backend/internal/auth"
	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/service"
)

// memoryUsers is an in-memory UserRepo keyed by e-mail.
func memoryUsers() *mockUserRepo {
	byEmail := map[string]domain.User{}
	roles := map[string][]string{}
	return &mockUserRepo{
		create: func(_ context.Context, u domain.User) (domain.User, error) {
			if _, ok := byEmail[u.Email]; ok {
				return domain.User{}, domain.ErrConflict
			}
			byEmail[u.Email] = u
			return u, nil
		},
		getByEmail: func(_ context.Context, email string) (domain.User, error) {
			if u, ok := byEmail[email]; ok {
				return u, nil
			}
			return domain.User{}, domain.ErrNotFound
		},
		addToRole: func(_ context.Context, userID, role string) error {
			roles[userID] = append(roles[userID], role)
			return nil
		},
		rolesFor: func(_ context.Context, userID string) ([]string, error) {
			return roles[userID], nil
		},
	}
}

func TestAccountService_RegisterThenLogin(t *testing.T) {
	tokens := auth.NewTokens("test-secret", time.Hour)
	svc := service.NewAccountService(memoryUsers(), tokens)
	ctx := context.Background()
	creds := domain.Credentials{Email: "traveller@example.com", Password: "secret1"}

	user, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "traveller@example.com", user.UserName)
	assert.NotEqual(t, "secret1", user.PasswordHash)

	raw, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	p, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, user.ID, p.UserID)
	assert.Equal(t, []string{domain.RoleUser}, p.Roles)
}

func TestAccountService_Register_Validation(t *testing.T) {
	svc := service.NewAccountService(memoryUsers(), auth.NewTokens("s", time.Hour))
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.Credentials{Email: "not-an-email", Password: "secret1"})
	assert.ErrorIs(t, err, domain.ErrValidation)

	_, err = svc.Register(ctx, domain.Credentials{Email: "a@example.com", Password: "123"})
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_DuplicateEmail(t *testing.T) {
	svc := service.NewAccountService(memoryUsers(), auth.NewTokens("s", time.Hour))
	ctx := context.Background()
	creds := domain.Credentials{Email: "traveller@example.com", Password: "secret1"}

	_, err := svc.Register(ctx, creds)
	require.NoError(t, err)

	_, err = svc.Register(ctx, creds)
	assert.ErrorIs(t, err, domain.ErrValidation)
}

func TestAccountService_Register_EmailIgnoresCase(t *testing.T) {
	tokens := auth.NewTokens("s", time.Hour)
	svc := service.NewAccountService(memoryUsers(), tokens)
	ctx := context.Background()

	bob, err := svc.Register(ctx, domain.Credentials{Email: "  Bob@Example.com ", Password: "secret1"})
	require.NoError(t, err)
	assert.Equal(t, "bob@example.com", bob.Email)

	_, err = svc.Register(ctx, domain.Credentials{Email: "bob@example.com", Password: "secret2"})
	require.ErrorIs(t, err, domain.ErrValidation)
	assert.EqualError(t, errors.Unwrap(err), "E-mail 'bob@example.com' is already taken.")

	raw, err := svc.Login(ctx, domain.Credentials{Email: "BOB@example.COM", Password: "secret1"})
	require.NoError(t, err)
	p, err := tokens.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, bob.ID, p.UserID)
}

func TestAccountService_Login_BadCredentials(t *testing.T) {
	svc := service.NewAccountService(memoryUsers(), auth.NewTokens("s", time.Hour))
	ctx := context.Background()

	_, err := svc.Register(ctx, domain.Credentials{Email: "traveller@example.com", Password: "secret1"})
	require.NoError(t, err)

	_, errWrongPass := svc.Login(ctx, domain.Credentials{Email: "traveller@example.com", Password: "wrong!!"})
	_, errNoUser := svc.Login(ctx, domain.Credentials{Email: "ghost@example.com", Password: "secret1"})

	assert.ErrorIs(t, errWrongPass, domain.ErrUnauthorized)
	assert.ErrorIs(t, errNoUser, domain.ErrUnauthorized)
	assert.Equal(t, errNoUser.Error(), errWrongPass.Error())
}

func TestAccountService_Login_PicksUpNewRoles(t *testing.T) {
	tokens := auth.NewTokens("s", time.Hour)
	users := memoryUsers()
	svc := service.NewAccountService(users, tokens)
	ctx := context.Background()
	creds := domain.Credentials{Email: "traveller@example.com", Password: "secret1"}

	user, err := svc.Register(ctx, creds)
	require.NoError(t, err)
	before, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	require.NoError(t, users.AddToRole(ctx, user.ID, domain.RoleAdmin))
	after, err := svc.Login(ctx, creds)
	require.NoError(t, err)

	old, err := tokens.Parse(before)
	require.NoError(t, err)
	assert.False(t, old.HasRole(domain.RoleAdmin), "issued tokens keep their roles")

	fresh, err := tokens.Parse(after)
	require.NoError(t, err)
	assert.True(t, fresh.HasRole(domain.RoleAdmin))
}
