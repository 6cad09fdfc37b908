package repo_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
	"github.com/tahiratravels/backend/testutil"
)

// newTestTx opens a transaction against the test database. The transaction is
// rolled back when the test finishes, giving free per-test isolation.
//
// Requires TEST_DATABASE_URL to be set; TestMain applies the migrations.
func newTestTx(t *testing.T) pgx.Tx {
	t.Helper()
	pool := testutil.NewPool(t)

	tx, err := pool.Begin(context.Background())
	require.NoError(t, err, "begin transaction")

	t.Cleanup(func() {
		_ = tx.Rollback(context.Background())
	})
	return tx
}

// seedUser inserts a user with a random id and e-mail.
func seedUser(t *testing.T, tx pgx.Tx, name string) domain.User {
	t.Helper()
	id := uuid.NewString()
	u, err := repo.NewUserRepo(tx).Create(context.Background(), domain.User{
		ID:           id,
		UserName:     name,
		Email:        name + "-" + id[:8] + "@example.com",
		PasswordHash: "hash",
	})
	require.NoError(t, err, "seed user")
	return u
}

// tourFixture returns an active tour in the "Beach Escapes" category.
// Callers can override individual fields after calling this function.
func tourFixture(authorID string) domain.Tour {
	return domain.Tour{
		Name:        "Sunny Lagoon",
		Description: "White sand and turquoise water.",
		ImageURL:    "https://example.com/lagoon.jpg",
		AuthorID:    authorID,
		CategoryID:  1,
		CreatedOn:   time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC),
	}
}

// seedTour inserts tourFixture(authorID) with the given name.
func seedTour(t *testing.T, tx pgx.Tx, authorID, name string) domain.Tour {
	t.Helper()
	in := tourFixture(authorID)
	in.Name = name
	tour, err := repo.NewTourRepo(tx).Create(context.Background(), in)
	require.NoError(t, err, "seed tour")
	return tour
}
