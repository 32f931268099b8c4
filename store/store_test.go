package store

import (
	"encoding/json"
	"os"
	"testing"
	"time"

	"daily-planner/db"
	"daily-planner/models"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var dbReady bool

func TestMain(m *testing.M) {
	godotenv.Load("../.env.test")

	if dsn := os.Getenv("DSN"); dsn != "" {
		db.ConnectDB(dsn)
		dbReady = true
		db.DB.Exec("DELETE FROM planners")
		db.DB.Exec("DELETE FROM users")
	}

	os.Exit(m.Run())
}

func requireDB(t *testing.T) {
	t.Helper()
	if !dbReady {
		t.Skip("DSN not set; skipping database tests")
	}
}

func TestCreateUser(t *testing.T) {
	requireDB(t)

	user, err := CreateUser("store-create@example.com", "hash1")
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.NotZero(t, user.ID)
	assert.Equal(t, "store-create@example.com", user.Email)
	assert.Equal(t, "hash1", user.PasswordHash)
	assert.WithinDuration(t, time.Now(), user.CreatedAt, time.Minute)

	// The unique index rejects a second insert regardless of the hash.
	_, err = CreateUser("store-create@example.com", "hash2")
	assert.ErrorIs(t, err, ErrDuplicateEmail)
}

func TestFindUserByEmail(t *testing.T) {
	requireDB(t)

	created, err := CreateUser("store-find@example.com", "hash1")
	require.NoError(t, err)

	found, err := FindUserByEmail("store-find@example.com")
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, created.ID, found.ID)

	missing, err := FindUserByEmail("nobody@example.com")
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestFindUserByID(t *testing.T) {
	requireDB(t)

	created, err := CreateUser("store-find-id@example.com", "hash1")
	require.NoError(t, err)

	found, err := FindUserByID(created.ID)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, "store-find-id@example.com", found.Email)

	missing, err := FindUserByID(created.ID + 100000)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestGetOrCreatePlanner(t *testing.T) {
	requireDB(t)

	user, err := CreateUser("store-planner@example.com", "hash1")
	require.NoError(t, err)

	missing, err := FindPlanner(user.ID)
	require.NoError(t, err)
	assert.Nil(t, missing)

	p, err := GetOrCreatePlanner(user.ID)
	require.NoError(t, err)
	require.NotNil(t, p)
	assert.Equal(t, user.ID, p.UserID)
	assert.Empty(t, p.DailyData)
	assert.Empty(t, p.WeeklyData)
	assert.Nil(t, p.HeroImage)

	again, err := GetOrCreatePlanner(user.ID)
	require.NoError(t, err)
	assert.Equal(t, p.ID, again.ID)
}

func TestSavePlanner(t *testing.T) {
	requireDB(t)

	user, err := CreateUser("store-save@example.com", "hash1")
	require.NoError(t, err)

	p, err := GetOrCreatePlanner(user.ID)
	require.NoError(t, err)
	firstWrite := p.LastUpdated

	img := "hero.png"
	p.DailyData = models.JSONMap{"2024-01-01": json.RawMessage(`{"task":"x"}`)}
	p.HeroImage = &img
	require.NoError(t, SavePlanner(p))

	saved, err := FindPlanner(user.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	require.Contains(t, saved.DailyData, "2024-01-01")
	assert.JSONEq(t, `{"task":"x"}`, string(saved.DailyData["2024-01-01"]))
	require.NotNil(t, saved.HeroImage)
	assert.Equal(t, "hero.png", *saved.HeroImage)
	assert.Empty(t, saved.WeeklyData)
	assert.False(t, saved.LastUpdated.Before(firstWrite))

	// Saving again with the same content is a no-op upsert, not an error.
	require.NoError(t, SavePlanner(saved))

	// Clearing the hero image persists NULL.
	saved.HeroImage = nil
	require.NoError(t, SavePlanner(saved))
	cleared, err := FindPlanner(user.ID)
	require.NoError(t, err)
	assert.Nil(t, cleared.HeroImage)
}

func TestSavePlannerInsertsWhenMissing(t *testing.T) {
	requireDB(t)

	user, err := CreateUser("store-upsert@example.com", "hash1")
	require.NoError(t, err)

	p := &models.Planner{
		UserID:    user.ID,
		DailyData: models.JSONMap{"2024-03-03": json.RawMessage(`{"task":"z"}`)},
	}
	require.NoError(t, SavePlanner(p))

	saved, err := FindPlanner(user.ID)
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Contains(t, saved.DailyData, "2024-03-03")
	assert.Empty(t, saved.WeeklyData)
}
