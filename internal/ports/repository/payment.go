package repository

import (
	"context"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// PaymentStats агрегаты по платежам для админской статистики
type PaymentStats struct {
	TotalPayments int64 `db:"total_payments"`
	TotalStars    int64 `db:"total_stars"`
}

// IPaymentRepo интерфейс для работы с платежами в БД
type IPaymentRepo interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByChargeID(ctx context.Context, chargeID string) (*domain.Payment, error)

	// GetLastCompleted возвращает последний завершённый платёж пользователя
	// или domain.ErrNoEntitlement, если платежей нет
	GetLastCompleted(ctx context.Context, userID int64) (*domain.Payment, error)

	MarkDelivered(ctx context.Context, id int64) error
	Stats(ctx context.Context) (*PaymentStats, error)
}
