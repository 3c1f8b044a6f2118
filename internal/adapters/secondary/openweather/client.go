package openweather

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

const (
	forecastEndpoint     = "data/2.5/forecast"
	airPollutionEndpoint = "data/2.5/air_pollution"
)

// truncateString обрезает строку до указанной длины
func truncateString(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen] + "..."
}

// Client - клиент для работы с OpenWeatherMap API
type Client struct {
	cfg        *Config
	HTTPClient *http.Client
	Log        *slog.Logger
}

// NewClient создаёт новый клиент OpenWeatherMap
func NewClient(cfg *Config, log *slog.Logger) *Client {
	return &Client{
		cfg: cfg,
		HTTPClient: &http.Client{
			Timeout: 15 * time.Second,
		},
		Log: log,
	}
}

// buildURL собирает полный URL запроса с параметрами
func (c *Client) buildURL(endpoint string, lat, lon float64) string {
	baseURL := strings.TrimSuffix(c.cfg.BaseURL, "/")

	q := url.Values{}
	q.Set("lat", fmt.Sprintf("%.6f", lat))
	q.Set("lon", fmt.Sprintf("%.6f", lon))
	q.Set("appid", c.cfg.ApiKey)
	q.Set("units", c.cfg.Units)
	q.Set("lang", c.cfg.Lang)

	return baseURL + "/" + endpoint + "?" + q.Encode()
}

// validateCoords проверяет, что координаты в допустимых пределах
func validateCoords(lat, lon float64) error {
	if lat < -90 || lat > 90 {
		return fmt.Errorf("%w: latitude %f out of range", domain.ErrWeatherFetch, lat)
	}
	if lon < -180 || lon > 180 {
		return fmt.Errorf("%w: longitude %f out of range", domain.ErrWeatherFetch, lon)
	}
	return nil
}

// GetForecast получает пятидневный прогноз и качество воздуха по координатам.
// Оба ответа обязательны: отсутствие любого из них - ошибка
// domain.ErrWeatherFetch.
func (c *Client) GetForecast(ctx context.Context, lat, lon float64) (*domain.WeatherData, error) {
	if err := validateCoords(lat, lon); err != nil {
		return nil, err
	}

	forecast, err := c.fetchForecast(ctx, lat, lon)
	if err != nil {
		return nil, err
	}

	data := &domain.WeatherData{
		City: domain.City{
			Name:           forecast.City.Name,
			TimezoneOffset: forecast.City.Timezone,
			Sunrise:        forecast.City.Sunrise,
			Sunset:         forecast.City.Sunset,
		},
		Samples: make([]domain.ForecastSample, 0, len(forecast.List)),
	}

	for _, item := range forecast.List {
		description := ""
		if len(item.Weather) > 0 {
			description = item.Weather[0].Description
		}
		data.Samples = append(data.Samples, domain.ForecastSample{
			Timestamp:   time.Unix(item.Dt, 0).UTC(),
			Temp:        item.Main.Temp,
			FeelsLike:   item.Main.FeelsLike,
			TempMin:     item.Main.TempMin,
			TempMax:     item.Main.TempMax,
			Pressure:    item.Main.Pressure,
			Humidity:    item.Main.Humidity,
			WindSpeed:   item.Wind.Speed,
			WindDeg:     item.Wind.Deg,
			Clouds:      item.Clouds.All,
			Description: description,
			Rain:        item.Rain.ThreeH,
			Snow:        item.Snow.ThreeH,
		})
	}

	if len(data.Samples) == 0 {
		return nil, fmt.Errorf("%w: provider returned empty forecast", domain.ErrWeatherFetch)
	}

	air, err := c.fetchAirQuality(ctx, lat, lon)
	if err != nil {
		c.Log.Error("air quality fetch failed",
			"error", err,
			"lat", lat,
			"lon", lon,
		)
		return nil, err
	}
	data.Air = air

	return data, nil
}

// fetchForecast запрашивает пятидневный прогноз с шагом 3 часа
func (c *Client) fetchForecast(ctx context.Context, lat, lon float64) (*forecastResponse, error) {
	body, err := c.doGet(ctx, forecastEndpoint, lat, lon)
	if err != nil {
		return nil, err
	}

	var forecast forecastResponse
	if err := json.Unmarshal(body, &forecast); err != nil {
		c.Log.Debug("failed to unmarshal forecast response",
			"error", err,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("%w: unmarshal forecast: %v", domain.ErrWeatherFetch, err)
	}

	return &forecast, nil
}

// fetchAirQuality запрашивает текущий индекс качества воздуха
func (c *Client) fetchAirQuality(ctx context.Context, lat, lon float64) (*domain.AirQuality, error) {
	body, err := c.doGet(ctx, airPollutionEndpoint, lat, lon)
	if err != nil {
		return nil, err
	}

	var pollution airPollutionResponse
	if err := json.Unmarshal(body, &pollution); err != nil {
		return nil, fmt.Errorf("%w: unmarshal air pollution: %v", domain.ErrWeatherFetch, err)
	}

	if len(pollution.List) == 0 {
		return nil, fmt.Errorf("%w: empty air pollution response", domain.ErrWeatherFetch)
	}

	entry := pollution.List[0]
	return &domain.AirQuality{
		AQI:  entry.Main.AQI,
		PM25: entry.Components.PM25,
		PM10: entry.Components.PM10,
		O3:   entry.Components.O3,
		NO2:  entry.Components.NO2,
	}, nil
}

// doGet выполняет GET запрос и возвращает тело при статусе 200
func (c *Client) doGet(ctx context.Context, endpoint string, lat, lon float64) ([]byte, error) {
	reqURL := c.buildURL(endpoint, lat, lon)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: create request: %v", domain.ErrWeatherFetch, err)
	}

	resp, err := c.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrWeatherFetch, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read response: %v", domain.ErrWeatherFetch, err)
	}

	if resp.StatusCode != http.StatusOK {
		c.Log.Debug("openweather returned non-200 status",
			"endpoint", endpoint,
			"status_code", resp.StatusCode,
			"body_preview", truncateString(string(body), 200),
		)
		return nil, fmt.Errorf("%w: status=%d", domain.ErrWeatherFetch, resp.StatusCode)
	}

	return body, nil
}
