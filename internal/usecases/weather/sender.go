package weather

import (
	"context"
)

// sendForecast отправляет блоки прогноза по одному сообщению на блок,
// без склейки. Последний блок уходит с кнопками действий.
func (s *Service) sendForecast(ctx context.Context, chatID int64, blocks []string) error {
	for i, block := range blocks {
		if i == len(blocks)-1 {
			return s.appendActionsAndSend(ctx, chatID, block)
		}
		if err := s.TelegramClient.SendMessage(ctx, chatID, block); err != nil {
			return err
		}
	}
	return nil
}

// appendActionsAndSend отправляет последний блок прогноза с кнопками
// повторной покупки и смены локации
func (s *Service) appendActionsAndSend(ctx context.Context, chatID int64, text string) error {
	keyboard := map[string]interface{}{
		"inline_keyboard": [][]map[string]interface{}{
			{
				{"text": "🌤️ Новий прогноз", "callback_data": "new_forecast"},
				{"text": "📍 Змінити локацію", "callback_data": "change_location"},
			},
		},
	}
	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, text, keyboard)
}
