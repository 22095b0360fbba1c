package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHobbyUpsertReturnsSameRow(t *testing.T) {
	db := newTestDB(t)
	repo := NewHobbyRepository(db)
	ctx := context.Background()

	first, err := repo.Upsert(ctx, "chess")
	require.NoError(t, err)
	require.NotZero(t, first.ID)

	second, err := repo.Upsert(ctx, "chess")
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Exact-name matching: a different case is a different hobby.
	other, err := repo.Upsert(ctx, "Chess")
	require.NoError(t, err)
	assert.NotEqual(t, first.ID, other.ID)
}

func TestHobbyGetByNameMissing(t *testing.T) {
	db := newTestDB(t)
	repo := NewHobbyRepository(db)

	hobby, err := repo.GetByName(context.Background(), "nonexistent")
	require.NoError(t, err)
	assert.Nil(t, hobby)
}

func TestHobbyUserAssociation(t *testing.T) {
	db := newTestDB(t)
	repo := NewHobbyRepository(db)
	ctx := context.Background()

	hobby, err := repo.Upsert(ctx, "baking")
	require.NoError(t, err)

	require.NoError(t, repo.AddToUser(ctx, 1, hobby.ID))
	require.NoError(t, repo.AddToUser(ctx, 1, hobby.ID)) // idempotent

	names, err := repo.ListNamesForUser(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, []string{"baking"}, names)

	require.NoError(t, repo.RemoveFromUser(ctx, 1, hobby.ID))
	names, err = repo.ListNamesForUser(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, names)

	// The hobby row itself survives removal of the last association.
	kept, err := repo.GetByName(ctx, "baking")
	require.NoError(t, err)
	require.NotNil(t, kept)
	assert.Equal(t, hobby.ID, kept.ID)
}
