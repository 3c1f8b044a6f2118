package telegram_stars

import (
	"context"
	"fmt"

	"log/slog"

	telegramPort "github.com/BogdanDubenets/weather-bot-telegram/internal/ports/telegram"

	paymentPort "github.com/BogdanDubenets/weather-bot-telegram/internal/ports/payment"
)

// Provider реализует IPaymentProvider для Telegram Stars
type Provider struct {
	telegramClient telegramPort.IClient
	log            *slog.Logger
}

// NewProvider создаёт новый провайдер для Telegram Stars
func NewProvider(telegramClient telegramPort.IClient, log *slog.Logger) *Provider {
	return &Provider{
		telegramClient: telegramClient,
		log:            log,
	}
}

// CreateInvoice выставляет счёт пользователю через Telegram Stars
func (p *Provider) CreateInvoice(ctx context.Context, req paymentPort.CreateInvoiceRequest) error {
	err := p.telegramClient.SendInvoice(ctx, req.ChatID, req.Title, req.Description, req.Payload, req.Amount)
	if err != nil {
		return fmt.Errorf("failed to send invoice: %w", err)
	}

	p.log.Debug("stars invoice created",
		"chat_id", req.ChatID,
		"payload", req.Payload,
		"stars", req.Amount,
	)
	return nil
}

// ConfirmPreCheckout подтверждает или отклоняет pre_checkout_query
func (p *Provider) ConfirmPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage *string) error {
	if err := p.telegramClient.AnswerPreCheckoutQuery(ctx, queryID, ok, errorMessage); err != nil {
		return fmt.Errorf("failed to answer pre_checkout_query: %w", err)
	}

	return nil
}
