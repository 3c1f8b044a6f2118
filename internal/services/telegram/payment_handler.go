package telegram

import (
	"context"
	"fmt"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// HandlePreCheckoutQuery обрабатывает pre_checkout_query от Telegram (для платежей Stars)
func (s *Service) HandlePreCheckoutQuery(ctx context.Context, query *domain.PreCheckoutQuery) error {
	if query == nil || query.From == nil {
		s.Log.Error("pre_checkout_query is nil or has no from")
		return fmt.Errorf("invalid pre_checkout_query")
	}

	if s.PaymentUseCase == nil {
		s.Log.Warn("payment use case not configured, rejecting pre_checkout_query",
			"query_id", query.ID,
		)
		return fmt.Errorf("payment use case not configured")
	}

	// Chat не нужен для pre_checkout_query, личный чат совпадает с ID пользователя
	if _, err := s.BotService.GetOrCreateUser(ctx, query.From,
		&domain.Chat{ID: query.From.ID, Type: "private"}); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to get or create user: %w", err))
	}

	if err := s.PaymentUseCase.ValidatePreCheckout(ctx, query); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to handle pre_checkout_query: %w", err))
	}

	return nil
}

// HandleSuccessfulPayment обрабатывает successful_payment от Telegram (для платежей Stars)
func (s *Service) HandleSuccessfulPayment(ctx context.Context, user *domain.User, message *domain.Message) error {
	if message == nil || message.SuccessfulPayment == nil {
		s.Log.Error("message or successful_payment is nil")
		return fmt.Errorf("invalid successful_payment")
	}

	if message.Chat == nil {
		s.Log.Error("message has no chat")
		return fmt.Errorf("message has no chat")
	}

	if s.PaymentUseCase == nil {
		s.Log.Error("payment use case not configured, cannot process successful_payment",
			"charge_id", message.SuccessfulPayment.TelegramPaymentChargeID,
		)
		return fmt.Errorf("payment use case not configured")
	}

	if err := s.PaymentUseCase.HandleSuccessfulPayment(ctx, user, message.Chat.ID, message.SuccessfulPayment); err != nil {
		return domain.WrapBusinessError(fmt.Errorf("failed to handle successful_payment: %w", err))
	}

	s.Log.Info("successful_payment processed",
		"user_id", user.TelegramUserID,
		"amount", message.SuccessfulPayment.TotalAmount,
		"charge_id", message.SuccessfulPayment.TelegramPaymentChargeID,
	)

	return nil
}
