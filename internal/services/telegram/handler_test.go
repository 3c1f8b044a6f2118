package telegram

import (
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

type fakeBotService struct {
	commands  []string
	texts     []string
	callbacks []string
	locations [][2]float64
	users     []int64
}

func (f *fakeBotService) HandleCommand(_ context.Context, _ *domain.User, command string, _ int64) error {
	f.commands = append(f.commands, command)
	return nil
}

func (f *fakeBotService) HandleText(_ context.Context, _ *domain.User, text string, _ int64) error {
	f.texts = append(f.texts, text)
	return nil
}

func (f *fakeBotService) HandleCallback(_ context.Context, _ *domain.User, callback *domain.CallbackQuery) error {
	if callback.Data != nil {
		f.callbacks = append(f.callbacks, *callback.Data)
	}
	return nil
}

func (f *fakeBotService) HandleLocation(_ context.Context, _ *domain.User, _ int64, lat, lon float64) error {
	f.locations = append(f.locations, [2]float64{lat, lon})
	return nil
}

func (f *fakeBotService) GetOrCreateUser(_ context.Context, tgUser *domain.TelegramUser, chat *domain.Chat) (*domain.User, error) {
	f.users = append(f.users, tgUser.ID)
	return &domain.User{TelegramUserID: tgUser.ID, TelegramChatID: chat.ID}, nil
}

type fakePaymentUseCase struct {
	invoices     []int64
	preCheckouts []string
	payments     []string
}

func (f *fakePaymentUseCase) SendInvoice(_ context.Context, _ *domain.User, _ int64, stars int64) error {
	f.invoices = append(f.invoices, stars)
	return nil
}

func (f *fakePaymentUseCase) ValidatePreCheckout(_ context.Context, query *domain.PreCheckoutQuery) error {
	f.preCheckouts = append(f.preCheckouts, query.ID)
	return nil
}

func (f *fakePaymentUseCase) HandleSuccessfulPayment(_ context.Context, _ *domain.User, _ int64, payment *domain.SuccessfulPayment) error {
	f.payments = append(f.payments, payment.TelegramPaymentChargeID)
	return nil
}

func newTestService(t *testing.T) (*Service, *fakeBotService, *fakePaymentUseCase) {
	t.Helper()
	bot := &fakeBotService{}
	payments := &fakePaymentUseCase{}
	svc := New(bot, payments, nil, nil, slog.Default())
	return svc, bot, payments
}

func strPtr(s string) *string { return &s }

func privateMessage(text string) *domain.Message {
	return &domain.Message{
		From: &domain.TelegramUser{ID: 100, FirstName: "Олена"},
		Chat: &domain.Chat{ID: 100, Type: "private"},
		Text: strPtr(text),
	}
}

func TestHandleUpdate_NilUpdate(t *testing.T) {
	svc, _, _ := newTestService(t)

	err := svc.HandleUpdate(context.Background(), nil)
	assert.Error(t, err)
}

func TestHandleUpdate_CommandRouting(t *testing.T) {
	svc, bot, _ := newTestService(t)

	update := &domain.Update{UpdateID: 1, Message: privateMessage("/start")}
	require.NoError(t, svc.HandleUpdate(context.Background(), update))

	require.Len(t, bot.commands, 1)
	assert.Equal(t, "/start", bot.commands[0])
	assert.Equal(t, []int64{100}, bot.users)
}

func TestHandleUpdate_CommandWithMentionAndArgs(t *testing.T) {
	svc, bot, _ := newTestService(t)

	update := &domain.Update{UpdateID: 2, Message: privateMessage("/weather@some_bot now")}
	require.NoError(t, svc.HandleUpdate(context.Background(), update))

	require.Len(t, bot.commands, 1)
	assert.Equal(t, "/weather", bot.commands[0])
}

func TestHandleUpdate_TextRouting(t *testing.T) {
	svc, bot, _ := newTestService(t)

	update := &domain.Update{UpdateID: 3, Message: privateMessage("привіт")}
	require.NoError(t, svc.HandleUpdate(context.Background(), update))

	assert.Empty(t, bot.commands)
	require.Len(t, bot.texts, 1)
	assert.Equal(t, "привіт", bot.texts[0])
}

func TestHandleUpdate_LocationRouting(t *testing.T) {
	svc, bot, _ := newTestService(t)

	msg := privateMessage("")
	msg.Text = nil
	msg.Location = &domain.Location{Latitude: 50.45, Longitude: 30.52}

	update := &domain.Update{UpdateID: 4, Message: msg}
	require.NoError(t, svc.HandleUpdate(context.Background(), update))

	require.Len(t, bot.locations, 1)
	assert.Equal(t, [2]float64{50.45, 30.52}, bot.locations[0])
}

func TestHandleUpdate_SuccessfulPayment(t *testing.T) {
	svc, _, payments := newTestService(t)

	msg := privateMessage("")
	msg.Text = nil
	msg.SuccessfulPayment = &domain.SuccessfulPayment{
		Currency:                "XTR",
		TotalAmount:             3,
		InvoicePayload:          "weather_4_days",
		TelegramPaymentChargeID: "charge-1",
	}

	update := &domain.Update{UpdateID: 5, Message: msg}
	require.NoError(t, svc.HandleUpdate(context.Background(), update))

	require.Len(t, payments.payments, 1)
	assert.Equal(t, "charge-1", payments.payments[0])
}

func TestHandleUpdate_PreCheckoutQuery(t *testing.T) {
	svc, bot, payments := newTestService(t)

	update := &domain.Update{
		UpdateID: 6,
		PreCheckoutQuery: &domain.PreCheckoutQuery{
			ID:             "query-1",
			From:           &domain.TelegramUser{ID: 200, FirstName: "Тарас"},
			Currency:       "XTR",
			TotalAmount:    1,
			InvoicePayload: "weather_2_days",
		},
	}
	require.NoError(t, svc.HandleUpdate(context.Background(), update))

	require.Len(t, payments.preCheckouts, 1)
	assert.Equal(t, "query-1", payments.preCheckouts[0])
	assert.Equal(t, []int64{200}, bot.users)
}

func TestHandleUpdate_CallbackQuery(t *testing.T) {
	svc, bot, _ := newTestService(t)

	update := &domain.Update{
		UpdateID: 7,
		CallbackQuery: &domain.CallbackQuery{
			ID:   "cb-1",
			From: &domain.TelegramUser{ID: 300, FirstName: "Ірина"},
			Data: strPtr("weather_stars_3"),
		},
	}
	require.NoError(t, svc.HandleUpdate(context.Background(), update))

	require.Len(t, bot.callbacks, 1)
	assert.Equal(t, "weather_stars_3", bot.callbacks[0])
}

func TestHandleMessage_IgnoresBots(t *testing.T) {
	svc, bot, _ := newTestService(t)

	msg := privateMessage("/start")
	msg.From.IsBot = true

	require.NoError(t, svc.HandleMessage(context.Background(), msg, 8))
	assert.Empty(t, bot.users)
	assert.Empty(t, bot.commands)
}

func TestHandleMessage_IgnoresGroups(t *testing.T) {
	svc, bot, _ := newTestService(t)

	msg := privateMessage("/start")
	msg.Chat.Type = "supergroup"

	require.NoError(t, svc.HandleMessage(context.Background(), msg, 9))
	assert.Empty(t, bot.commands)
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		text     string
		expected string
	}{
		{"/start", "start"},
		{"/weather@pogoda_bot", "weather"},
		{"/help extra args", "help"},
		{"/stats@bot args", "stats"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, ParseCommand(tt.text), tt.text)
	}
}

func TestIsCommand(t *testing.T) {
	assert.True(t, IsCommand("/start"))
	assert.False(t, IsCommand("start"))
	assert.False(t, IsCommand(""))
	assert.False(t, IsCommand("привіт /start"))
}
