package weatherapi

import (
	"context"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/openweather"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/service"
)

// Service реализует IWeatherAPI поверх клиента OpenWeatherMap
type Service struct {
	client *openweather.Client
}

func New(client *openweather.Client) service.IWeatherAPI {
	return &Service{
		client: client,
	}
}

// GetForecast возвращает прогноз и качество воздуха для координат
func (s *Service) GetForecast(ctx context.Context, lat, lon float64) (*domain.WeatherData, error) {
	return s.client.GetForecast(ctx, lat, lon)
}
