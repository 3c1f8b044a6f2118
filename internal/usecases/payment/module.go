package payment

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/pkg/metrics"
	paymentPort "github.com/BogdanDubenets/weather-bot-telegram/internal/ports/payment"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/repository"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/ports/service"
	"github.com/BogdanDubenets/weather-bot-telegram/internal/usecases/forecast"
)

const starsCurrency = "XTR"

type Service struct {
	PaymentRepo     repository.IPaymentRepo
	UserRepo        repository.IUserRepo
	PaymentProvider paymentPort.IPaymentProvider // Telegram Stars провайдер
	TelegramService service.ITelegramService
	AlerterService  service.IAlerterService
	Metrics         *metrics.Metrics
	Log             *slog.Logger
}

func New(
	paymentRepo repository.IPaymentRepo,
	userRepo repository.IUserRepo,
	paymentProvider paymentPort.IPaymentProvider,
	telegramService service.ITelegramService,
	alerterService service.IAlerterService,
	m *metrics.Metrics,
	log *slog.Logger,
) *Service {
	return &Service{
		PaymentRepo:     paymentRepo,
		UserRepo:        userRepo,
		PaymentProvider: paymentProvider,
		TelegramService: telegramService,
		AlerterService:  alerterService,
		Metrics:         m,
		Log:             log,
	}
}

// SendInvoice выставляет счёт на тариф с указанным количеством звёзд.
// Платёж в БД не создаётся: запись появляется только после successful_payment,
// брошенные счета следа не оставляют.
func (s *Service) SendInvoice(ctx context.Context, user *domain.User, chatID int64, stars int64) error {
	plan, err := forecast.ResolveTier(stars)
	if err != nil {
		return fmt.Errorf("failed to resolve pricing tier: %w", err)
	}

	req := paymentPort.CreateInvoiceRequest{
		ChatID:      chatID,
		Title:       fmt.Sprintf("Прогноз погоди на %d дн.", plan.Days),
		Description: plan.Description,
		Payload:     BuildPayload(plan.Days),
		Amount:      plan.Stars,
		Currency:    starsCurrency,
	}

	if err := s.PaymentProvider.CreateInvoice(ctx, req); err != nil {
		return fmt.Errorf("failed to create invoice: %w", err)
	}

	s.Log.Info("invoice sent",
		"user_id", user.TelegramUserID,
		"stars", plan.Stars,
		"days", plan.Days,
	)

	return nil
}

// ValidatePreCheckout проверяет pre_checkout_query и отвечает Telegram.
// Отклоняется всё, что не похоже на покупку прогноза: чужой payload,
// валюта не XTR, количество звёзд вне тарифной сетки.
func (s *Service) ValidatePreCheckout(ctx context.Context, query *domain.PreCheckoutQuery) error {
	reject := func(reason, userMessage string) error {
		s.Log.Warn("pre_checkout_query rejected",
			"query_id", query.ID,
			"reason", reason,
			"payload", query.InvoicePayload,
			"currency", query.Currency,
			"amount", query.TotalAmount,
		)
		if err := s.PaymentProvider.ConfirmPreCheckout(ctx, query.ID, false, &userMessage); err != nil {
			return fmt.Errorf("failed to reject pre_checkout_query: %w", err)
		}
		return nil
	}

	if query.Currency != starsCurrency {
		return reject("currency mismatch", "Оплата можлива лише у Telegram Stars")
	}

	if !IsWeatherPayload(query.InvoicePayload) {
		return reject("foreign payload", "Невідомий товар")
	}

	if _, err := forecast.ResolveTier(query.TotalAmount); err != nil {
		return reject("amount out of range", "Невірна кількість зірок")
	}

	if err := s.PaymentProvider.ConfirmPreCheckout(ctx, query.ID, true, nil); err != nil {
		return fmt.Errorf("failed to confirm pre_checkout_query: %w", err)
	}

	s.Log.Info("pre_checkout_query confirmed",
		"query_id", query.ID,
		"amount", query.TotalAmount,
	)

	return nil
}

// HandleSuccessfulPayment фиксирует оплату: создаёт запись платежа, обновляет
// счётчики пользователя и просит геолокацию для доставки прогноза
func (s *Service) HandleSuccessfulPayment(ctx context.Context, user *domain.User, chatID int64, sp *domain.SuccessfulPayment) error {
	// Telegram может доставить successful_payment повторно
	if existing, err := s.PaymentRepo.GetByChargeID(ctx, sp.TelegramPaymentChargeID); err == nil && existing != nil {
		s.Log.Warn("duplicate successful_payment ignored",
			"charge_id", sp.TelegramPaymentChargeID,
			"payment_id", existing.ID,
		)
		return nil
	}

	payment := &domain.Payment{
		UserID:           user.TelegramUserID,
		StarsAmount:      sp.TotalAmount,
		Payload:          sp.InvoicePayload,
		OrderRef:         uuid.NewString(),
		PaymentDate:      time.Now().UTC(),
		TelegramChargeID: sp.TelegramPaymentChargeID,
		Status:           domain.PaymentStatusCompleted,
		WeatherDelivered: false,
	}

	if err := s.PaymentRepo.Create(ctx, payment); err != nil {
		// Деньги уже списаны, потерять платёж нельзя
		if s.AlerterService != nil {
			alertMsg := fmt.Sprintf("⚠️ Payment recorded by Telegram but not in DB\nuser_id: %d\ncharge_id: %s\nstars: %d\nerror: %v",
				user.TelegramUserID, sp.TelegramPaymentChargeID, sp.TotalAmount, err)
			_ = s.AlerterService.SendAlert(ctx, alertMsg)
		}
		return fmt.Errorf("failed to record payment: %w", err)
	}

	if err := s.UserRepo.AddOrder(ctx, user.TelegramUserID, sp.TotalAmount); err != nil {
		s.Log.Error("failed to update user order counters",
			"error", err,
			"user_id", user.TelegramUserID,
		)
	}

	if s.Metrics != nil {
		s.Metrics.PaymentsSucceeded.Inc()
		s.Metrics.StarsCollected.Add(float64(sp.TotalAmount))
	}

	plan, err := forecast.ResolveTier(sp.TotalAmount)
	if err != nil {
		// Оплачено количество звёзд вне сетки: фиксируем и зовём человека
		s.Log.Error("paid stars amount out of pricing grid",
			"user_id", user.TelegramUserID,
			"stars", sp.TotalAmount,
		)
		if s.AlerterService != nil {
			alertMsg := fmt.Sprintf("⚠️ Payment with unknown tier\nuser_id: %d\nstars: %d", user.TelegramUserID, sp.TotalAmount)
			_ = s.AlerterService.SendAlert(ctx, alertMsg)
		}
		return fmt.Errorf("unknown paid tier: %w", err)
	}

	successMsg := fmt.Sprintf("✅ Оплату отримано! Вам доступний прогноз на %d дн.\n\n📍 Надішліть геолокацію, щоб отримати прогноз.", plan.Days)
	keyboard := locationRequestKeyboard(user)

	if err := s.TelegramService.SendMessageWithKeyboard(ctx, chatID, successMsg, keyboard); err != nil {
		s.Log.Warn("failed to send payment success notification",
			"error", err,
			"chat_id", chatID,
		)
	}

	s.Log.Info("payment processed successfully",
		"payment_id", payment.ID,
		"user_id", user.TelegramUserID,
		"stars", sp.TotalAmount,
		"days", plan.Days,
	)

	return nil
}

// locationRequestKeyboard собирает reply клавиатуру с запросом геолокации.
// Если у пользователя есть сохранённая локация, добавляется кнопка повтора.
func locationRequestKeyboard(user *domain.User) map[string]interface{} {
	rows := [][]map[string]interface{}{
		{
			{"text": "📍 Надіслати геолокацію", "request_location": true},
		},
	}

	if user.LastLocationName != nil && user.LastLocationLat != nil && user.LastLocationLon != nil {
		rows = append(rows, []map[string]interface{}{
			{"text": fmt.Sprintf("🔄 %s", *user.LastLocationName)},
		})
	}

	return map[string]interface{}{
		"keyboard":          rows,
		"resize_keyboard":   true,
		"one_time_keyboard": true,
	}
}
