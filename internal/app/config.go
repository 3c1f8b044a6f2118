package app

import (
	server "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/primary/http"
	alerterAdapter "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/alerter"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/openweather"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/storage/sqlite"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/telegram"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	SQLite      *sqlite.Config         `envconfig:"SQLITE"`
	Log         *logger.Config         `envconfig:"LOG"`
	Server      *server.Config         `envconfig:"APISERVER"`
	Telegram    *telegram.Config       `envconfig:"TELEGRAM"`
	OpenWeather *openweather.Config    `envconfig:"OPENWEATHER"`
	Alerter     *alerterAdapter.Config `envconfig:"ALERTER"`
	AdminIDs    []int64                `envconfig:"ADMIN_IDS"`
}

func NewEnvConfig(envPrefix string) (*Config, error) {
	cfg := &Config{}

	_ = godotenv.Load("deployments/local/.env")

	if err := envconfig.Process(envPrefix, cfg); err != nil {
		return nil, err
	}

	return cfg, nil
}
