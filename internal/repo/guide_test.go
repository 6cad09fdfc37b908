package repo_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tahiratravels/backend/internal/domain"
	"github.com/tahiratravels/backend/internal/repo"
)

func guideFixture(tourID int64, name string) domain.TourGuide {
	return domain.TourGuide{
		Name:            name,
		Age:             34,
		Location:        "Lisbon",
		Languages:       "English, Portuguese",
		ExperienceYears: 8,
		TourID:          tourID,
	}
}

func TestGuideRepo_CreateAndGetByID(t *testing.T) {
	tx := newTestTx(t)
	alice := seedUser(t, tx, "alice")
	tour := seedTour(t, tx, alice.ID, "Sunny Lagoon")
	r := repo.NewGuideRepo(tx)
	ctx := context.Background()

	created, err := r.Create(ctx, guideFixture(tour.ID, "Rui"))
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	got, err := r.GetByID(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created, got)
}

func TestGuideRepo_GetByID_NotFound(t *testing.T) {
	r := repo.NewGuideRepo(newTestTx(t))

	_, err := r.GetByID(context.Background(), 987654321)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuideRepo_FirstForTour(t *testing.T) {
	tx := newTestTx(t)
	alice := seedUser(t, tx, "alice")
	tour := seedTour(t, tx, alice.ID, "Sunny Lagoon")
	empty := seedTour(t, tx, alice.ID, "Foggy Harbour")
	r := repo.NewGuideRepo(tx)
	ctx := context.Background()

	first, err := r.Create(ctx, guideFixture(tour.ID, "Rui"))
	require.NoError(t, err)
	_, err = r.Create(ctx, guideFixture(tour.ID, "Ana"))
	require.NoError(t, err)

	got, err := r.FirstForTour(ctx, tour.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, got.ID)

	_, err = r.FirstForTour(ctx, empty.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestGuideRepo_HidesGuidesOfDeletedTours(t *testing.T) {
	tx := newTestTx(t)
	alice := seedUser(t, tx, "alice")
	tour := seedTour(t, tx, alice.ID, "Sunny Lagoon")
	r := repo.NewGuideRepo(tx)
	ctx := context.Background()

	guide, err := r.Create(ctx, guideFixture(tour.ID, "Rui"))
	require.NoError(t, err)
	require.NoError(t, repo.NewTourRepo(tx).SoftDelete(ctx, tour.ID, alice.ID))

	_, err = r.GetByID(ctx, guide.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = r.FirstForTour(ctx, tour.ID)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
