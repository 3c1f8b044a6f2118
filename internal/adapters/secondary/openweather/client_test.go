package openweather

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

const forecastBody = `{
	"cod": "200",
	"city": {"name": "Kyiv", "timezone": 10800, "sunrise": 1750000000, "sunset": 1750057600},
	"list": [
		{
			"dt": 1750010400,
			"main": {"temp": 21.5, "feels_like": 21.0, "temp_min": 20.1, "temp_max": 22.3, "pressure": 1015, "humidity": 48},
			"weather": [{"description": "ясно"}],
			"clouds": {"all": 5},
			"wind": {"speed": 3.2, "deg": 180},
			"rain": {"3h": 0.4}
		},
		{
			"dt": 1750021200,
			"main": {"temp": 24.0, "feels_like": 24.1, "temp_min": 23.0, "temp_max": 25.0, "pressure": 1014, "humidity": 40},
			"weather": [{"description": "хмарно"}],
			"clouds": {"all": 60},
			"wind": {"speed": 4.0, "deg": 200}
		}
	]
}`

const airBody = `{
	"list": [
		{"main": {"aqi": 2}, "components": {"pm2_5": 8.5, "pm10": 12.1, "o3": 60.2, "no2": 10.4}}
	]
}`

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &Config{
		BaseURL: srv.URL,
		ApiKey:  "test-key",
		Units:   "metric",
		Lang:    "uk",
	}
	return NewClient(cfg, slog.New(slog.NewTextHandler(testWriter{t}, nil)))
}

type testWriter struct{ t *testing.T }

func (w testWriter) Write(p []byte) (int, error) {
	w.t.Log(strings.TrimSpace(string(p)))
	return len(p), nil
}

func TestGetForecast(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "test-key", r.URL.Query().Get("appid"))
		assert.Equal(t, "metric", r.URL.Query().Get("units"))
		assert.Equal(t, "uk", r.URL.Query().Get("lang"))

		switch {
		case strings.Contains(r.URL.Path, "forecast"):
			w.Write([]byte(forecastBody))
		case strings.Contains(r.URL.Path, "air_pollution"):
			w.Write([]byte(airBody))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	})

	data, err := client.GetForecast(context.Background(), 50.45, 30.52)
	require.NoError(t, err)

	assert.Equal(t, "Kyiv", data.City.Name)
	assert.Equal(t, 10800, data.City.TimezoneOffset)
	require.Len(t, data.Samples, 2)
	assert.Equal(t, 21.5, data.Samples[0].Temp)
	assert.Equal(t, "ясно", data.Samples[0].Description)
	assert.Equal(t, 0.4, data.Samples[0].Rain)
	assert.Equal(t, 0.0, data.Samples[1].Rain)

	require.NotNil(t, data.Air)
	assert.Equal(t, 2, data.Air.AQI)
	assert.Equal(t, 8.5, data.Air.PM25)
}

func TestGetForecastProviderError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"cod":401,"message":"Invalid API key"}`))
	})

	_, err := client.GetForecast(context.Background(), 50.45, 30.52)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWeatherFetch))
}

func TestGetForecastEmptyList(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"cod":"200","city":{"name":"Kyiv"},"list":[]}`))
	})

	_, err := client.GetForecast(context.Background(), 50.45, 30.52)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWeatherFetch))
}

func TestGetForecastAirFailureFatal(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "forecast") {
			w.Write([]byte(forecastBody))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
	})

	_, err := client.GetForecast(context.Background(), 50.45, 30.52)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrWeatherFetch))
}

func TestGetForecastInvalidCoords(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no request expected for invalid coords")
	})

	cases := []struct{ lat, lon float64 }{
		{91, 0},
		{-91, 0},
		{0, 181},
		{0, -181},
	}
	for _, tc := range cases {
		_, err := client.GetForecast(context.Background(), tc.lat, tc.lon)
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrWeatherFetch))
	}
}
