package weather

import (
	"context"
	"fmt"
	"strings"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/usecases/forecast"
)

// HandleCommand обрабатывает команду бота
func (s *Service) HandleCommand(ctx context.Context, user *domain.User, command string, updateID int64) error {
	s.Log.Info("handling command",
		"command", command,
		"user_id", user.TelegramUserID,
		"update_id", updateID,
	)

	switch command {
	case "/start":
		return s.handleStart(ctx, user)
	case "/weather":
		return s.sendTierMenu(ctx, user.TelegramChatID)
	case "/help":
		return s.TelegramClient.SendMessage(ctx, user.TelegramChatID, msgHelp)
	case "/stats":
		return s.handleStats(ctx, user)
	default:
		return s.TelegramClient.SendMessage(ctx, user.TelegramChatID, msgUnknown)
	}
}

// handleStart приветствует пользователя
func (s *Service) handleStart(ctx context.Context, user *domain.User) error {
	if err := s.TelegramClient.SendMessage(ctx, user.TelegramChatID, msgStart); err != nil {
		return domain.WrapBusinessError(err)
	}
	return nil
}

// sendTierMenu отправляет меню тарифов с inline кнопками
func (s *Service) sendTierMenu(ctx context.Context, chatID int64) error {
	var rows [][]map[string]interface{}
	for _, plan := range forecast.Tiers() {
		rows = append(rows, []map[string]interface{}{
			{
				"text":          fmt.Sprintf("%s - %s", plan.Name, plan.Description),
				"callback_data": fmt.Sprintf("weather_stars_%d", plan.Stars),
			},
		})
	}

	keyboard := map[string]interface{}{
		"inline_keyboard": rows,
	}

	return s.TelegramClient.SendMessageWithKeyboard(ctx, chatID, msgWeatherMenu, keyboard)
}

// HandleText обрабатывает произвольный текст.
// Единственный осмысленный текст - кнопка повторного использования локации.
func (s *Service) HandleText(ctx context.Context, user *domain.User, text string, updateID int64) error {
	if strings.HasPrefix(text, reuseLocationPrefix) &&
		user.LastLocationLat != nil && user.LastLocationLon != nil {
		return s.HandleLocation(ctx, user, user.TelegramChatID, *user.LastLocationLat, *user.LastLocationLon)
	}

	return s.TelegramClient.SendMessage(ctx, user.TelegramChatID, msgUnknown)
}

// HandleCallback обрабатывает нажатия inline кнопок
func (s *Service) HandleCallback(ctx context.Context, user *domain.User, callback *domain.CallbackQuery) error {
	if callback.Data == nil {
		return nil
	}
	data := *callback.Data

	s.Log.Info("handling callback",
		"data", data,
		"user_id", user.TelegramUserID,
	)

	// Кнопку нужно "отпустить" в любом случае, иначе у пользователя висят часики
	if err := s.TelegramClient.AnswerCallbackQuery(ctx, callback.ID, "", false); err != nil {
		s.Log.Warn("failed to answer callback query",
			"error", err,
			"callback_id", callback.ID,
		)
	}

	switch {
	case strings.HasPrefix(data, "weather_stars_"):
		var stars int64
		if _, err := fmt.Sscanf(data, "weather_stars_%d", &stars); err != nil {
			s.Log.Warn("malformed tier callback", "data", data)
			return nil
		}
		return s.PaymentUseCase.SendInvoice(ctx, user, user.TelegramChatID, stars)

	case data == "new_forecast":
		return s.sendTierMenu(ctx, user.TelegramChatID)

	case data == "change_location":
		return s.TelegramClient.SendMessage(ctx, user.TelegramChatID, msgLocationRequest)

	default:
		s.Log.Warn("unknown callback data", "data", data)
		return nil
	}
}
