package domain

import "time"

// User - пользователь бота; первичный ключ - telegram user id
type User struct {
	TelegramUserID   int64     `json:"telegram_user_id" db:"user_id"`
	TelegramChatID   int64     `json:"telegram_chat_id" db:"chat_id"`
	FirstName        string    `json:"first_name" db:"first_name"`
	LastName         *string   `json:"last_name,omitempty" db:"last_name"`
	Username         *string   `json:"username,omitempty" db:"username"`
	LanguageCode     *string   `json:"language_code,omitempty" db:"language_code"`
	RegisteredAt     time.Time `json:"registered_at" db:"registration_date"`
	LastActivityAt   time.Time `json:"last_activity_at" db:"last_activity"`
	LastLocationLat  *float64  `json:"last_location_lat,omitempty" db:"last_location_lat"`
	LastLocationLon  *float64  `json:"last_location_lon,omitempty" db:"last_location_lon"`
	LastLocationName *string   `json:"last_location_name,omitempty" db:"last_location_name"`
	TotalOrders      int64     `json:"total_orders" db:"total_orders"`
	TotalStarsSpent  int64     `json:"total_stars_spent" db:"total_stars_spent"`
}
