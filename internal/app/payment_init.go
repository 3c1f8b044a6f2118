package app

import (
	starsProvider "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/payment/telegram_stars"
	tgAdapter "github.com/BogdanDubenets/weather-bot-telegram/internal/adapters/secondary/telegram"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/pkg/metrics"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/service"
	telegramService "github.com/BogdanDubenets/weather-bot-telegram/internal/services/telegram"
	paymentUsecase "github.com/BogdanDubenets/weather-bot-telegram/internal/usecases/payment"
)

// initPayment инициализирует payment use case и интегрирует его в telegram service
func (a *App) initPayment(
	telegramClient *tgAdapter.Client,
	repos *repositories,
	tgService *telegramService.Service,
	alerterSvc service.IAlerterService,
	botMetrics *metrics.Metrics,
) *paymentUsecase.Service {
	// Создаём Telegram Stars провайдер
	paymentProvider := starsProvider.NewProvider(telegramClient, a.Log)

	paymentUseCase := paymentUsecase.New(
		repos.Payment,
		repos.User,
		paymentProvider,
		tgService,
		alerterSvc, // может быть nil
		botMetrics,
		a.Log,
	)

	// Интегрируем payment use case в telegram service
	tgService.SetPaymentUseCase(paymentUseCase)

	a.Log.Info("payment system initialized successfully")
	return paymentUseCase
}
