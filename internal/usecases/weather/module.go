package weather

import (
	"log/slog"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/pkg/metrics"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/repository"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/service"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/telegram"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/usecase"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/usecases/forecast"
)

// Service бизнес-логика погодного бота
type Service struct {
	UserRepo       repository.IUserRepo
	PaymentRepo    repository.IPaymentRepo
	WeatherAPI     service.IWeatherAPI
	TelegramClient telegram.IClient
	PaymentUseCase usecase.IPaymentUseCase
	Composer       *forecast.Composer
	Metrics        *metrics.Metrics
	AdminIDs       []int64
	Log            *slog.Logger
}

// New создаёт новый сервис для бизнес-логики погодного бота
func New(
	userRepo repository.IUserRepo,
	paymentRepo repository.IPaymentRepo,
	weatherAPI service.IWeatherAPI,
	telegramClient telegram.IClient,
	paymentUseCase usecase.IPaymentUseCase,
	composer *forecast.Composer,
	m *metrics.Metrics,
	adminIDs []int64,
	log *slog.Logger,
) *Service {
	return &Service{
		UserRepo:       userRepo,
		PaymentRepo:    paymentRepo,
		WeatherAPI:     weatherAPI,
		TelegramClient: telegramClient,
		PaymentUseCase: paymentUseCase,
		Composer:       composer,
		Metrics:        m,
		AdminIDs:       adminIDs,
		Log:            log,
	}
}

// isAdmin проверяет, входит ли пользователь в список администраторов
func (s *Service) isAdmin(telegramID int64) bool {
	for _, id := range s.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}
