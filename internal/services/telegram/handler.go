package telegram

import (
	"context"
	"fmt"
	"strings"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// HandleUpdate Основной метод для обработки всех типов обновлений
func (s *Service) HandleUpdate(ctx context.Context, update *domain.Update) error {
	if update == nil {
		return fmt.Errorf("update is nil")
	}

	switch {
	case update.PreCheckoutQuery != nil:
		s.countUpdate("pre_checkout_query")
		return s.HandlePreCheckoutQuery(ctx, update.PreCheckoutQuery)

	case update.CallbackQuery != nil:
		s.countUpdate("callback_query")
		return s.HandleCallbackQuery(ctx, update.CallbackQuery)

	case update.Message != nil:
		return s.HandleMessage(ctx, update.Message, update.UpdateID)
	}

	s.Log.Debug("ignoring unsupported update", "update_id", update.UpdateID)
	return nil
}

// HandleMessage обрабатывает входящее сообщение - роутинг в usecase
func (s *Service) HandleMessage(ctx context.Context, message *domain.Message, updateID int64) error {
	if message == nil {
		return fmt.Errorf("message is nil")
	}

	if message.From == nil || message.From.IsBot {
		s.Log.Debug("ignoring message from bot", "update_id", updateID)
		return nil
	}

	if message.Chat != nil && message.Chat.Type != "private" {
		s.Log.Warn("ignoring message from group/chat",
			"update_id", updateID,
			"chat_type", message.Chat.Type,
			"chat_id", message.Chat.ID,
		)
		return nil
	}

	// Получаем или создаём пользователя через use case
	user, err := s.BotService.GetOrCreateUser(ctx, message.From, message.Chat)
	if err != nil {
		s.Log.Error("failed to get or create user",
			"error", err,
			"telegram_user_id", message.From.ID,
			"update_id", updateID,
		)
		return fmt.Errorf("failed to get or create user: %w", err)
	}

	switch {
	case message.SuccessfulPayment != nil:
		s.countUpdate("successful_payment")
		return s.HandleSuccessfulPayment(ctx, user, message)

	case message.Location != nil:
		s.countUpdate("location")
		return s.BotService.HandleLocation(ctx, user, message.Chat.ID,
			message.Location.Latitude, message.Location.Longitude)

	case message.Text != nil:
		return s.routeTextMessage(ctx, user, *message.Text, updateID)
	}

	return nil
}

// routeTextMessage роутит в команду/текст
func (s *Service) routeTextMessage(ctx context.Context, user *domain.User, text string, updateID int64) error {
	if IsCommand(text) {
		s.countUpdate("command")
		return s.BotService.HandleCommand(ctx, user, "/"+ParseCommand(text), updateID)
	}

	s.countUpdate("text")
	return s.BotService.HandleText(ctx, user, text, updateID)
}

// HandleCallbackQuery обрабатывает нажатие inline кнопки
func (s *Service) HandleCallbackQuery(ctx context.Context, callback *domain.CallbackQuery) error {
	if callback == nil || callback.From == nil {
		return fmt.Errorf("invalid callback_query")
	}

	var chat *domain.Chat
	if callback.Message != nil {
		chat = callback.Message.Chat
	}
	if chat == nil {
		// fallback: личный чат совпадает с ID пользователя
		chat = &domain.Chat{ID: callback.From.ID, Type: "private"}
	}

	user, err := s.BotService.GetOrCreateUser(ctx, callback.From, chat)
	if err != nil {
		return fmt.Errorf("failed to get or create user: %w", err)
	}

	return s.BotService.HandleCallback(ctx, user, callback)
}

func (s *Service) countUpdate(kind string) {
	if s.Metrics != nil {
		s.Metrics.UpdatesReceived.WithLabelValues(kind).Inc()
	}
}

func ParseCommand(text string) string {
	text = strings.TrimPrefix(text, "/")

	if idx := strings.Index(text, "@"); idx != -1 {
		text = text[:idx]
	}

	if idx := strings.Index(text, " "); idx != -1 {
		text = text[:idx]
	}

	return text
}

func IsCommand(text string) bool {
	return len(text) > 0 && text[0] == '/'
}
