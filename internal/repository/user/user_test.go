package userRepo

import (
	"context"
	"io"
	"testing"
	"time"

	"log/slog"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/storage/sqlite"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	ports "github.com/BogdanDubenets/weather-bot-telegram/internal/ports/repository"
)

func newTestRepo(t *testing.T) ports.IUserRepo {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, sqlite.RunMigrations(db, log))

	return New(sqlite.NewDB(db), log)
}

func strPtr(s string) *string { return &s }

func testUser(id int64) *domain.User {
	now := time.Now().UTC().Truncate(time.Second)
	return &domain.User{
		TelegramUserID: id,
		TelegramChatID: id,
		FirstName:      "Олена",
		Username:       strPtr("olena"),
		LanguageCode:   strPtr("uk"),
		RegisteredAt:   now,
		LastActivityAt: now,
	}
}

func TestCreateAndGetByTelegramID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := testUser(100)
	require.NoError(t, repo.Create(ctx, user))

	got, err := repo.GetByTelegramID(ctx, 100)
	require.NoError(t, err)

	assert.Equal(t, int64(100), got.TelegramUserID)
	assert.Equal(t, int64(100), got.TelegramChatID)
	assert.Equal(t, "Олена", got.FirstName)
	require.NotNil(t, got.Username)
	assert.Equal(t, "olena", *got.Username)
	assert.Nil(t, got.LastName)
	assert.Nil(t, got.LastLocationLat)
	assert.Zero(t, got.TotalOrders)
	assert.WithinDuration(t, user.RegisteredAt, got.RegisteredAt, time.Second)
}

func TestGetByTelegramID_NotFound(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetByTelegramID(context.Background(), 404)
	assert.Error(t, err)
}

func TestUpdate(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	user := testUser(200)
	require.NoError(t, repo.Create(ctx, user))

	user.FirstName = "Оленка"
	user.Username = strPtr("olenka")
	user.TelegramChatID = 201
	require.NoError(t, repo.Update(ctx, user))

	got, err := repo.GetByTelegramID(ctx, 200)
	require.NoError(t, err)
	assert.Equal(t, "Оленка", got.FirstName)
	assert.Equal(t, "olenka", *got.Username)
	assert.Equal(t, int64(201), got.TelegramChatID)
}

func TestUpdateLocation(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser(300)))
	require.NoError(t, repo.UpdateLocation(ctx, 300, 50.45, 30.52, "Київ"))

	got, err := repo.GetByTelegramID(ctx, 300)
	require.NoError(t, err)
	require.NotNil(t, got.LastLocationLat)
	require.NotNil(t, got.LastLocationLon)
	require.NotNil(t, got.LastLocationName)
	assert.InDelta(t, 50.45, *got.LastLocationLat, 1e-9)
	assert.InDelta(t, 30.52, *got.LastLocationLon, 1e-9)
	assert.Equal(t, "Київ", *got.LastLocationName)
}

func TestAddOrder(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testUser(400)))
	require.NoError(t, repo.AddOrder(ctx, 400, 3))
	require.NoError(t, repo.AddOrder(ctx, 400, 5))

	got, err := repo.GetByTelegramID(ctx, 400)
	require.NoError(t, err)
	assert.Equal(t, int64(2), got.TotalOrders)
	assert.Equal(t, int64(8), got.TotalStarsSpent)
}

func TestCount(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)

	require.NoError(t, repo.Create(ctx, testUser(500)))
	require.NoError(t, repo.Create(ctx, testUser(501)))

	count, err = repo.Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}
