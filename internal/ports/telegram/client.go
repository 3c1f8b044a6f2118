package telegram

import (
	"context"
)

// IClient интерфейс для клиента Telegram Bot API
type IClient interface {
	SendMessage(ctx context.Context, chatID int64, text string) error
	SendMessageWithKeyboard(ctx context.Context, chatID int64, text string, keyboard map[string]interface{}) error
	AnswerCallbackQuery(ctx context.Context, callbackID string, text string, showAlert bool) error

	// SendInvoice отправляет счёт на оплату в Telegram Stars (валюта XTR)
	SendInvoice(ctx context.Context, chatID int64, title, description, payload string, amount int64) error

	// AnswerPreCheckoutQuery подтверждает или отклоняет pre_checkout_query.
	// Telegram требует ответить в течение 10 секунд, иначе платёж отменяется.
	AnswerPreCheckoutQuery(ctx context.Context, queryID string, ok bool, errorMessage *string) error
}
