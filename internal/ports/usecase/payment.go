package usecase

import (
	"context"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// IPaymentUseCase интерфейс для работы с платежами (use case слой)
type IPaymentUseCase interface {
	// SendInvoice выставляет счёт на тариф с указанным количеством звёзд
	SendInvoice(ctx context.Context, user *domain.User, chatID int64, stars int64) error

	// ValidatePreCheckout проверяет pre_checkout_query и отвечает Telegram
	ValidatePreCheckout(ctx context.Context, query *domain.PreCheckoutQuery) error

	// HandleSuccessfulPayment фиксирует оплату и запускает доставку прогноза
	HandleSuccessfulPayment(ctx context.Context, user *domain.User, chatID int64, payment *domain.SuccessfulPayment) error
}
