package weather

import (
	"context"
	"errors"
	"fmt"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// HandleLocation доставляет оплаченный прогноз по присланной геолокации.
// Право на прогноз определяется последним завершённым платежом с
// недоставленным прогнозом. После успешной отправки платёж помечается
// доставленным, при ошибке получения погоды остаётся активным.
func (s *Service) HandleLocation(ctx context.Context, user *domain.User, chatID int64, lat, lon float64) error {
	payment, err := s.PaymentRepo.GetLastCompleted(ctx, user.TelegramUserID)
	if err != nil {
		if errors.Is(err, domain.ErrNoEntitlement) {
			return s.TelegramClient.SendMessage(ctx, chatID, msgNoPayment)
		}
		return fmt.Errorf("failed to check entitlement: %w", err)
	}

	if payment.WeatherDelivered {
		return s.TelegramClient.SendMessage(ctx, chatID, msgNoPayment)
	}

	if err := s.TelegramClient.SendMessage(ctx, chatID, msgProcessing); err != nil {
		s.Log.Warn("failed to send processing message",
			"error", err,
			"chat_id", chatID,
		)
	}

	data, err := s.WeatherAPI.GetForecast(ctx, lat, lon)
	if err != nil {
		if s.Metrics != nil {
			s.Metrics.WeatherFetchErrors.Inc()
		}
		s.Log.Error("weather fetch failed",
			"error", err,
			"user_id", user.TelegramUserID,
			"lat", lat,
			"lon", lon,
		)
		if sendErr := s.TelegramClient.SendMessage(ctx, chatID, msgWeatherError); sendErr != nil {
			s.Log.Warn("failed to send weather error message", "error", sendErr)
		}
		return domain.WrapBusinessError(err)
	}

	blocks, err := s.Composer.Compose(*data, payment.StarsAmount)
	if err != nil {
		s.Log.Error("forecast composition failed",
			"error", err,
			"user_id", user.TelegramUserID,
			"stars", payment.StarsAmount,
		)
		if sendErr := s.TelegramClient.SendMessage(ctx, chatID, msgWeatherError); sendErr != nil {
			s.Log.Warn("failed to send weather error message", "error", sendErr)
		}
		return domain.WrapBusinessError(err)
	}

	if err := s.sendForecast(ctx, chatID, blocks); err != nil {
		return fmt.Errorf("failed to send forecast: %w", err)
	}

	if err := s.PaymentRepo.MarkDelivered(ctx, payment.ID); err != nil {
		s.Log.Error("failed to mark payment delivered",
			"error", err,
			"payment_id", payment.ID,
		)
	}

	if err := s.UserRepo.UpdateLocation(ctx, user.TelegramUserID, lat, lon, data.City.Name); err != nil {
		s.Log.Warn("failed to save user location",
			"error", err,
			"user_id", user.TelegramUserID,
		)
	}

	if s.Metrics != nil {
		s.Metrics.ForecastsDelivered.Inc()
	}

	s.Log.Info("forecast delivered",
		"user_id", user.TelegramUserID,
		"payment_id", payment.ID,
		"stars", payment.StarsAmount,
		"city", data.City.Name,
	)

	return nil
}
