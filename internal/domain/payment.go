package domain

import "time"

// PaymentStatus статус платежа
type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed" // Stars списываются в момент successful_payment
	PaymentStatusRefunded  PaymentStatus = "refunded"  // возврат средств (вручную через поддержку)
)

// Payment платёж Telegram Stars; запись append-only, создаётся по successful_payment
type Payment struct {
	ID               int64         `json:"id" db:"id"`
	UserID           int64         `json:"user_id" db:"user_id"`
	StarsAmount      int64         `json:"stars_amount" db:"stars_amount"`
	Payload          string        `json:"payload" db:"payload"` // invoice payload вида "weather_N_days"
	OrderRef         string        `json:"order_ref" db:"order_ref"`
	PaymentDate      time.Time     `json:"payment_date" db:"payment_date"`
	TelegramChargeID string        `json:"telegram_payment_id" db:"telegram_payment_id"`
	Status           PaymentStatus `json:"status" db:"status"`
	WeatherDelivered bool          `json:"weather_delivered" db:"weather_delivered"`
}
