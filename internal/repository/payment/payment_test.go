package paymentRepo

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

const testUserID = int64(100)

func newTestRepo(t *testing.T) ports.IPaymentRepo {
	t.Helper()

	db, err := sqlx.Open("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	require.NoError(t, sqlite.RunMigrations(db, log))

	_, err = db.Exec(`INSERT INTO users (user_id, chat_id, first_name) VALUES (?, ?, ?)`,
		testUserID, testUserID, "Олена")
	require.NoError(t, err)

	return New(sqlite.NewDB(db), log)
}

func testPayment(chargeID string, stars int64, date time.Time) *domain.Payment {
	return &domain.Payment{
		UserID:           testUserID,
		StarsAmount:      stars,
		Payload:          "weather_4_days",
		OrderRef:         "ref-" + chargeID,
		PaymentDate:      date,
		TelegramChargeID: chargeID,
		Status:           domain.PaymentStatusCompleted,
	}
}

func TestCreateAssignsID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	payment := testPayment("charge-1", 3, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, payment))
	assert.NotZero(t, payment.ID)
}

func TestCreate_DuplicateChargeID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testPayment("charge-dup", 1, time.Now().UTC())))
	assert.Error(t, repo.Create(ctx, testPayment("charge-dup", 1, time.Now().UTC())))
}

func TestGetByChargeID(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	require.NoError(t, repo.Create(ctx, testPayment("charge-2", 5, time.Now().UTC())))

	got, err := repo.GetByChargeID(ctx, "charge-2")
	require.NoError(t, err)
	assert.Equal(t, int64(5), got.StarsAmount)
	assert.Equal(t, domain.PaymentStatusCompleted, got.Status)
	assert.False(t, got.WeatherDelivered)

	_, err = repo.GetByChargeID(ctx, "no-such-charge")
	assert.Error(t, err)
}

func TestGetLastCompleted_ReturnsLatest(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, testPayment("charge-old", 1, now.Add(-time.Hour))))
	require.NoError(t, repo.Create(ctx, testPayment("charge-new", 4, now)))

	got, err := repo.GetLastCompleted(ctx, testUserID)
	require.NoError(t, err)
	assert.Equal(t, "charge-new", got.TelegramChargeID)
	assert.Equal(t, int64(4), got.StarsAmount)
}

func TestGetLastCompleted_NoPayments(t *testing.T) {
	repo := newTestRepo(t)

	_, err := repo.GetLastCompleted(context.Background(), testUserID)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrNoEntitlement)
}

func TestMarkDelivered(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	payment := testPayment("charge-3", 2, time.Now().UTC())
	require.NoError(t, repo.Create(ctx, payment))
	require.NoError(t, repo.MarkDelivered(ctx, payment.ID))

	got, err := repo.GetByChargeID(ctx, "charge-3")
	require.NoError(t, err)
	assert.True(t, got.WeatherDelivered)
}

func TestStats(t *testing.T) {
	repo := newTestRepo(t)
	ctx := context.Background()

	now := time.Now().UTC()
	require.NoError(t, repo.Create(ctx, testPayment("charge-4", 2, now.Add(-time.Minute))))
	require.NoError(t, repo.Create(ctx, testPayment("charge-5", 5, now)))

	stats, err := repo.Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stats.TotalPayments)
	assert.Equal(t, int64(7), stats.TotalStars)
}
