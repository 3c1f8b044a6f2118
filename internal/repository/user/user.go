package userRepo

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	ports "github.com/BogdanDubenets/weather-bot-telegram/internal/ports/repository"

	"log/slog"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/persistence"
)

type userColumns struct {
	TableName        string
	UserID           string
	ChatID           string
	Username         string
	FirstName        string
	LastName         string
	LanguageCode     string
	RegistrationDate string
	LastActivity     string
	LastLocationLat  string
	LastLocationLon  string
	LastLocationName string
	TotalOrders      string
	TotalStarsSpent  string
}

type Repository struct {
	db      persistence.Persistence
	Log     *slog.Logger
	columns userColumns
}

// New создаёт новый репозиторий для работы с пользователями
func New(db persistence.Persistence, log *slog.Logger) ports.IUserRepo {
	cols := userColumns{
		TableName:        "users",
		UserID:           "user_id",
		ChatID:           "chat_id",
		Username:         "username",
		FirstName:        "first_name",
		LastName:         "last_name",
		LanguageCode:     "language_code",
		RegistrationDate: "registration_date",
		LastActivity:     "last_activity",
		LastLocationLat:  "last_location_lat",
		LastLocationLon:  "last_location_lon",
		LastLocationName: "last_location_name",
		TotalOrders:      "total_orders",
		TotalStarsSpent:  "total_stars_spent",
	}
	return &Repository{
		db:      db,
		Log:     log,
		columns: cols,
	}
}

// allColumns возвращает строку со всеми колонками (13 колонок)
func (r *Repository) allColumns() string {
	return fmt.Sprintf("%s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s, %s",
		r.columns.UserID,
		r.columns.ChatID,
		r.columns.Username,
		r.columns.FirstName,
		r.columns.LastName,
		r.columns.LanguageCode,
		r.columns.RegistrationDate,
		r.columns.LastActivity,
		r.columns.LastLocationLat,
		r.columns.LastLocationLon,
		r.columns.LastLocationName,
		r.columns.TotalOrders,
		r.columns.TotalStarsSpent)
}

// Create создаёт нового пользователя
func (r *Repository) Create(ctx context.Context, user *domain.User) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		r.columns.TableName,
		r.allColumns())
	err := r.db.Exec(ctx, query,
		user.TelegramUserID,
		user.TelegramChatID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
		user.RegisteredAt,
		user.LastActivityAt,
		user.LastLocationLat,
		user.LastLocationLon,
		user.LastLocationName,
		user.TotalOrders,
		user.TotalStarsSpent,
	)
	if err != nil {
		r.Log.Error("failed to create user",
			"error", err,
			"user_id", user.TelegramUserID,
		)
		return fmt.Errorf("failed to create user: %w", err)
	}

	r.Log.Debug("user created successfully", "user_id", user.TelegramUserID)
	return nil
}

// GetByTelegramID получает пользователя по Telegram ID
func (r *Repository) GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error) {
	var user domain.User

	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = ?`,
		r.allColumns(),
		r.columns.TableName,
		r.columns.UserID,
	)

	err := r.db.Get(ctx, &user, query, telegramID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("user not found: %w", err)
		}
		r.Log.Error("failed to get user",
			"error", err,
			"user_id", telegramID,
		)
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	return &user, nil
}

// Update обновляет профиль пользователя
func (r *Repository) Update(ctx context.Context, user *domain.User) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = ?, %s = ?, %s = ?, %s = ?, %s = ?, %s = ? WHERE %s = ?`,
		r.columns.TableName,
		r.columns.ChatID,
		r.columns.Username,
		r.columns.FirstName,
		r.columns.LastName,
		r.columns.LanguageCode,
		r.columns.LastActivity,
		r.columns.UserID,
	)

	err := r.db.Exec(ctx, query,
		user.TelegramChatID,
		user.Username,
		user.FirstName,
		user.LastName,
		user.LanguageCode,
		time.Now().UTC(),
		user.TelegramUserID,
	)
	if err != nil {
		r.Log.Error("failed to update user",
			"error", err,
			"user_id", user.TelegramUserID,
		)
		return fmt.Errorf("failed to update user: %w", err)
	}

	return nil
}

// UpdateLastActivity обновляет время последней активности
func (r *Repository) UpdateLastActivity(ctx context.Context, telegramID int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = ? WHERE %s = ?`,
		r.columns.TableName,
		r.columns.LastActivity,
		r.columns.UserID,
	)

	err := r.db.Exec(ctx, query, time.Now().UTC(), telegramID)
	if err != nil {
		r.Log.Error("failed to update last activity",
			"error", err,
			"user_id", telegramID,
		)
		return fmt.Errorf("failed to update last activity: %w", err)
	}
	return nil
}

// UpdateLocation сохраняет последнюю локацию пользователя
func (r *Repository) UpdateLocation(ctx context.Context, telegramID int64, lat, lon float64, name string) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = ?, %s = ?, %s = ?, %s = ? WHERE %s = ?`,
		r.columns.TableName,
		r.columns.LastLocationLat,
		r.columns.LastLocationLon,
		r.columns.LastLocationName,
		r.columns.LastActivity,
		r.columns.UserID,
	)

	err := r.db.Exec(ctx, query, lat, lon, name, time.Now().UTC(), telegramID)
	if err != nil {
		r.Log.Error("failed to update location",
			"error", err,
			"user_id", telegramID,
		)
		return fmt.Errorf("failed to update location: %w", err)
	}

	r.Log.Debug("user location updated", "user_id", telegramID, "name", name)
	return nil
}

// AddOrder увеличивает счётчики заказов и потраченных звёзд
func (r *Repository) AddOrder(ctx context.Context, telegramID int64, stars int64) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = %s + 1, %s = %s + ?, %s = ? WHERE %s = ?`,
		r.columns.TableName,
		r.columns.TotalOrders,
		r.columns.TotalOrders,
		r.columns.TotalStarsSpent,
		r.columns.TotalStarsSpent,
		r.columns.LastActivity,
		r.columns.UserID,
	)

	err := r.db.Exec(ctx, query, stars, time.Now().UTC(), telegramID)
	if err != nil {
		r.Log.Error("failed to add order",
			"error", err,
			"user_id", telegramID,
			"stars", stars,
		)
		return fmt.Errorf("failed to add order: %w", err)
	}

	r.Log.Debug("user order counters updated", "user_id", telegramID, "stars", stars)
	return nil
}

// Count возвращает количество зарегистрированных пользователей
func (r *Repository) Count(ctx context.Context) (int64, error) {
	var count int64

	query := fmt.Sprintf(`SELECT COUNT(*) FROM %s`, r.columns.TableName)

	err := r.db.Get(ctx, &count, query)
	if err != nil {
		r.Log.Error("failed to count users", "error", err)
		return 0, fmt.Errorf("failed to count users: %w", err)
	}
	return count, nil
}

// BeginTx начинает новую транзакцию
func (r *Repository) BeginTx(ctx context.Context) (persistence.Transaction, error) {
	return r.db.BeginTx(ctx)
}

// WithTransaction выполняет функцию в транзакции
func (r *Repository) WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error {
	return r.db.WithTransaction(ctx, fn)
}
