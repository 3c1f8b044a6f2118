package weather

import (
	"context"
	"errors"
	"io"
	"testing"

	"log/slog"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeTelegramClient запоминает отправленные сообщения
type fakeTelegramClient struct {
	messages      []string
	keyboardTexts []string
	sendErr       error
}

func (f *fakeTelegramClient) SendMessage(ctx context.Context, chatID int64, text string) error {
	if f.sendErr != nil {
		return f.sendErr
	}
	f.messages = append(f.messages, text)
	return nil
}

func (f *fakeTelegramClient) SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error {
	f.keyboardTexts = append(f.keyboardTexts, text)
	return nil
}

func (f *fakeTelegramClient) AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error {
	return nil
}

func (f *fakeTelegramClient) SendInvoice(ctx context.Context, chatID int64, title, description, payload string, amount int64) error {
	return nil
}

func (f *fakeTelegramClient) AnswerPreCheckoutQuery(ctx context.Context, queryID string, ok bool, errorMessage *string) error {
	return nil
}

func newSenderService(client *fakeTelegramClient) *Service {
	return &Service{
		TelegramClient: client,
		Log:            slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

func TestSendForecastOneMessagePerBlock(t *testing.T) {
	client := &fakeTelegramClient{}
	svc := newSenderService(client)

	blocks := []string{"шапка", "день 1", "день 2", "підвал"}
	require.NoError(t, svc.sendForecast(context.Background(), 42, blocks))

	// каждый блок уходит отдельным сообщением, последний с кнопками
	assert.Equal(t, []string{"шапка", "день 1", "день 2"}, client.messages)
	assert.Equal(t, []string{"підвал"}, client.keyboardTexts)
}

func TestSendForecastSingleBlock(t *testing.T) {
	client := &fakeTelegramClient{}
	svc := newSenderService(client)

	require.NoError(t, svc.sendForecast(context.Background(), 42, []string{"єдиний"}))

	assert.Empty(t, client.messages)
	assert.Equal(t, []string{"єдиний"}, client.keyboardTexts)
}

func TestSendForecastStopsOnError(t *testing.T) {
	client := &fakeTelegramClient{sendErr: errors.New("network down")}
	svc := newSenderService(client)

	err := svc.sendForecast(context.Background(), 42, []string{"шапка", "підвал"})
	require.Error(t, err)
	assert.Empty(t, client.keyboardTexts)
}
