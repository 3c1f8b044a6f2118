package telegram

import (
	"context"
	"fmt"
)

// SendMessage отправляет текстовое сообщение пользователю
func (s *Service) SendMessage(ctx context.Context, chatID int64, text string) error {
	if err := s.TelegramClient.SendMessage(ctx, chatID, text); err != nil {
		s.Log.Error("failed to send message",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message: %w", err)
	}

	s.Log.Debug("message sent successfully", "chat_id", chatID)
	return nil
}

// SendMessageWithKeyboard отправляет сообщение с клавиатурой
func (s *Service) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	if err := s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, text, keyboard); err != nil {
		s.Log.Error("failed to send message with keyboard",
			"error", err,
			"chat_id", chatID,
		)
		return fmt.Errorf("failed to send message with keyboard: %w", err)
	}

	s.Log.Debug("message with keyboard sent successfully", "chat_id", chatID)
	return nil
}

// AnswerCallbackQuery отправляет ответ на callback query
func (s *Service) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callbackID, text, showAlert); err != nil {
		s.Log.Error("failed to answer callback query",
			"error", err,
			"callback_id", callbackID,
		)
		return fmt.Errorf("failed to answer callback query: %w", err)
	}

	s.Log.Debug("callback query answered successfully", "callback_id", callbackID)
	return nil
}
