package telegram

// APIResponse базовая структура ответа от Telegram API
type APIResponse struct {
	OK          bool   `json:"ok"`
	Description string `json:"description,omitempty"`
	ErrorCode   int    `json:"error_code,omitempty"`
}

// ChatInfo чат в ответах API
type ChatInfo struct {
	ID int64 `json:"id"`
}
