// internal/handlers/users/store_test.go
package users

import (
	"context"
	"strconv"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"plantscape-service/internal/common/config"
	"plantscape-service/internal/common/database"
	"plantscape-service/internal/models"
)

func newRedisStore(t *testing.T) *RedisStore {
	t.Helper()
	mr := miniredis.RunT(t)

	port, err := strconv.Atoi(mr.Port())
	require.NoError(t, err)

	db, err := database.NewRedis(config.RedisConfig{
		Host: mr.Host(),
		Port: port,
	})
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return NewRedisStore(db)
}

func mkUser(name string, plants ...string) models.User {
	refs := make([]models.PlantRef, len(plants))
	for i, p := range plants {
		refs[i] = models.PlantRef{Name: p}
	}
	return models.User{Name: name, Plants: refs}
}

func testStoreBehavior(t *testing.T, store Store) {
	ctx := context.Background()

	initial, err := store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Empty(t, initial)

	require.NoError(t, store.SaveUsers(ctx, []models.User{
		mkUser("Raj", "Snake Plant"),
		mkUser("Aisha", "Guava"),
	}))

	listed, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Raj", listed[0].Name)
	assert.Equal(t, "Aisha", listed[1].Name)

	// Saving an existing name replaces the plant list but keeps order
	require.NoError(t, store.SaveUsers(ctx, []models.User{
		mkUser("Raj", "Pothos", "Fern"),
	}))

	listed, err = store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 2)
	assert.Equal(t, "Raj", listed[0].Name)
	assert.Equal(t, []string{"Pothos", "Fern"}, listed[0].PlantNames())

	// Blank names are skipped
	require.NoError(t, store.SaveUsers(ctx, []models.User{mkUser("")}))
	listed, err = store.ListUsers(ctx)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestMemoryStore(t *testing.T) {
	testStoreBehavior(t, NewMemoryStore())
}

func TestRedisStore(t *testing.T) {
	testStoreBehavior(t, newRedisStore(t))
}

func TestSeedSampleUsers(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, SeedSampleUsers(ctx, store))

	listed, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 9)
	assert.Equal(t, "Raj", listed[0].Name)
	assert.Equal(t, []string{"Spider Plant", "Peace Lily", "Snake Plant", "Pothos", "Rubber Plant"}, listed[0].PlantNames())
	assert.Equal(t, "Noah", listed[8].Name)
}

func TestSeedSampleUsersIsIdempotent(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	require.NoError(t, store.SaveUsers(ctx, []models.User{mkUser("Zoe", "Fern")}))
	require.NoError(t, SeedSampleUsers(ctx, store))

	listed, err := store.ListUsers(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, "Zoe", listed[0].Name)
}
