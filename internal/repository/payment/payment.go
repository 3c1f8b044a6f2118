package paymentRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	ports "github.com/BogdanDubenets/weather-bot-telegram/internal/ports/repository"

	"log/slog"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/persistence"
)

type paymentColumns struct {
	TableName         string
	ID                string
	UserID            string
	StarsAmount       string
	Payload           string
	OrderRef          string
	PaymentDate       string
	TelegramPaymentID string
	Status            string
	WeatherDelivered  string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns paymentColumns
}

// New создаёт новый репозиторий для работы с платежами
func New(db persistence.Persistence, log *slog.Logger) ports.IPaymentRepo {
	cols := paymentColumns{
		TableName:         "payments",
		ID:                "id",
		UserID:            "user_id",
		StarsAmount:       "stars_amount",
		Payload:           "payload",
		OrderRef:          "order_ref",
		PaymentDate:       "payment_date",
		TelegramPaymentID: "telegram_payment_id",
		Status:            "status",
		WeatherDelivered:  "weather_delivered",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (9 колонок)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.ID,
		r.columns.UserID,
		r.columns.StarsAmount,
		r.columns.Payload,
		r.columns.OrderRef,
		r.columns.PaymentDate,
		r.columns.TelegramPaymentID,
		r.columns.Status,
		r.columns.WeatherDelivered,
	)
}

// Create создаёт новый платёж; сгенерированный id записывается обратно в payment
func (r *Repository) Create(ctx context.Context, payment *domain.Payment) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s) VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		r.columns.TableName,
		r.columns.UserID,
		r.columns.StarsAmount,
		r.columns.Payload,
		r.columns.OrderRef,
		r.columns.PaymentDate,
		r.columns.TelegramPaymentID,
		r.columns.Status,
		r.columns.WeatherDelivered,
	)

	err := r.db.Exec(ctx, query,
		payment.UserID,
		payment.StarsAmount,
		payment.Payload,
		payment.OrderRef,
		payment.PaymentDate,
		payment.TelegramChargeID,
		string(payment.Status),
		payment.WeatherDelivered,
	)
	if err != nil {
		r.Log.Error("failed to create payment",
			"error", err,
			"user_id", payment.UserID,
			"charge_id", payment.TelegramChargeID,
		)
		return fmt.Errorf("failed to create payment: %w", err)
	}

	idQuery := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		r.columns.ID,
		r.columns.TableName,
		r.columns.TelegramPaymentID,
	)
	if err := r.db.Get(ctx, &payment.ID, idQuery, payment.TelegramChargeID); err != nil {
		r.Log.Warn("failed to read back payment id",
			"error", err,
			"charge_id", payment.TelegramChargeID,
		)
	}

	r.Log.Debug("payment created successfully",
		"payment_id", payment.ID,
		"user_id", payment.UserID,
		"stars", payment.StarsAmount,
	)
	return nil
}

// GetByChargeID получает платёж по telegram_payment_charge_id
func (r *Repository) GetByChargeID(ctx context.Context, chargeID string) (*domain.Payment, error) {
	var payment domain.Payment

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.TelegramPaymentID,
	)

	err := r.db.Get(ctx, &payment, query, chargeID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("payment not found: %w", err)
		}
		r.Log.Error("failed to get payment by charge_id",
			"error", err,
			"charge_id", chargeID,
		)
		return nil, fmt.Errorf("failed to get payment: %w", err)
	}

	return &payment, nil
}

// GetLastCompleted возвращает последний завершённый платёж пользователя.
// Если платежей нет, возвращает domain.ErrNoEntitlement.
func (r *Repository) GetLastCompleted(ctx context.Context, userID int64) (*domain.Payment, error) {
	var payment domain.Payment

	query := fmt.Sprintf(`
		SELECT %s
		FROM %s
		WHERE %s = ?
		  AND %s = ?
		ORDER BY %s DESC, %s DESC
		LIMIT 1
	`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
		r.columns.Status,
		r.columns.PaymentDate,
		r.columns.ID,
	)

	err := r.db.Get(ctx, &payment, query, userID, string(domain.PaymentStatusCompleted))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: user %d", domain.ErrNoEntitlement, userID)
		}
		r.Log.Error("failed to get last completed payment",
			"error", err,
			"user_id", userID,
		)
		return nil, fmt.Errorf("failed to get last completed payment: %w", err)
	}

	return &payment, nil
}

// MarkDelivered отмечает, что прогноз по платежу доставлен
func (r *Repository) MarkDelivered(ctx context.Context, id int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = 1 WHERE %s = ?`,
		r.columns.TableName,
		r.columns.WeatherDelivered,
		r.columns.ID,
	)

	err := r.db.Exec(ctx, query, id)
	if err != nil {
		r.Log.Error("failed to mark payment delivered",
			"error", err,
			"payment_id", id,
		)
		return fmt.Errorf("failed to mark payment delivered: %w", err)
	}

	r.Log.Debug("payment marked delivered", "payment_id", id)
	return nil
}

// Stats возвращает агрегаты по завершённым платежам
func (r *Repository) Stats(ctx context.Context) (*ports.PaymentStats, error) {
	var stats ports.PaymentStats

	query := fmt.Sprintf(`
		SELECT COUNT(*) AS total_payments, COALESCE(SUM(%s), 0) AS total_stars
		FROM %s
		WHERE %s = ?
	`,
		r.columns.StarsAmount,
		r.columns.TableName,
		r.columns.Status,
	)

	err := r.db.Get(ctx, &stats, query, string(domain.PaymentStatusCompleted))
	if err != nil {
		r.Log.Error("failed to get payment stats", "error", err)
		return nil, fmt.Errorf("failed to get payment stats: %w", err)
	}

	return &stats, nil
}
