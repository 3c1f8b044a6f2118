package repository

import (
	"context"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/persistence"
)

// IUserRepo интерфейс для работы с пользователями Telegram
type IUserRepo interface {
	Create(ctx context.Context, user *domain.User) error
	GetByTelegramID(ctx context.Context, telegramID int64) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
	UpdateLastActivity(ctx context.Context, telegramID int64) error
	UpdateLocation(ctx context.Context, telegramID int64, lat, lon float64, name string) error

	// AddOrder увеличивает счётчики заказов и потраченных звёзд
	AddOrder(ctx context.Context, telegramID int64, stars int64) error

	Count(ctx context.Context) (int64, error)

	BeginTx(ctx context.Context) (persistence.Transaction, error)
	WithTransaction(ctx context.Context, fn func(context.Context, persistence.Transaction) error) error
}
