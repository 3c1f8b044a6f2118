package telegram

import (
	"log/slog"

	TgClient "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/telegram"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/pkg/metrics"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/service"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/usecase"
)

type Service struct {
	BotService     service.IBotService
	PaymentUseCase usecase.IPaymentUseCase
	TelegramClient *TgClient.Client
	Metrics        *metrics.Metrics
	Log            *slog.Logger
}

func New(
	botService service.IBotService,
	paymentUseCase usecase.IPaymentUseCase,
	telegramClient *TgClient.Client,
	m *metrics.Metrics,
	log *slog.Logger,
) *Service {
	return &Service{
		BotService:     botService,
		PaymentUseCase: paymentUseCase,
		TelegramClient: telegramClient,
		Metrics:        m,
		Log:            log,
	}
}

// SetBotService устанавливает botService (для случаев когда нужно обновить после создания)
func (s *Service) SetBotService(botService service.IBotService) {
	s.BotService = botService
}

// SetPaymentUseCase устанавливает payment use case после создания
func (s *Service) SetPaymentUseCase(paymentUseCase usecase.IPaymentUseCase) {
	s.PaymentUseCase = paymentUseCase
}
