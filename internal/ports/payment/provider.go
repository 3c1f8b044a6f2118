package payment

import (
	"context"
)

// IPaymentProvider интерфейс для платёжного провайдера (Telegram Stars и т.д.)
// Use case зависит только от этого интерфейса, не зная деталей реализации
type IPaymentProvider interface {
	// CreateInvoice выставляет счёт пользователю
	CreateInvoice(ctx context.Context, req CreateInvoiceRequest) error

	// ConfirmPreCheckout подтверждает или отклоняет pre_checkout_query
	ConfirmPreCheckout(ctx context.Context, queryID string, ok bool, errorMessage *string) error
}

// CreateInvoiceRequest запрос на создание invoice
type CreateInvoiceRequest struct {
	ChatID      int64
	Title       string
	Description string
	Payload     string // идентификатор покупки, вернётся в successful_payment
	Amount      int64  // количество звёзд
	Currency    string // "XTR" для Stars
}
