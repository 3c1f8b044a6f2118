package service

import (
	"context"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// IWeatherAPI интерфейс провайдера данных погоды.
// Реализация обязана вернуть либо полный набор данных, либо ошибку
// domain.ErrWeatherFetch: частичные данные не отдаются.
type IWeatherAPI interface {
	GetForecast(ctx context.Context, lat, lon float64) (*domain.WeatherData, error)
}
