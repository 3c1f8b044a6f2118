package telegram

import (
	"context"
	"fmt"
)

// SetWebhookRequest запрос на установку webhook
type SetWebhookRequest struct {
	URL                string   `json:"url"`
	SecretToken        string   `json:"secret_token,omitempty"` // возвращается в X-Telegram-Bot-Api-Secret-Token
	AllowedUpdates     []string `json:"allowed_updates,omitempty"`
	DropPendingUpdates bool     `json:"drop_pending_updates,omitempty"`
}

// SetWebhook регистрирует URL для доставки обновлений.
// allowed_updates явно включает pre_checkout_query, иначе Telegram
// по умолчанию его не доставляет.
func (c *Client) SetWebhook(ctx context.Context, url string, secretToken string) error {
	req := SetWebhookRequest{
		URL:         url,
		SecretToken: secretToken,
		AllowedUpdates: []string{
			"message",
			"callback_query",
			"pre_checkout_query",
		},
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "setWebhook", req, &apiResp); err != nil {
		return fmt.Errorf("telegram setWebhook failed: %w", err)
	}

	if !apiResp.OK {
		c.log.Error("telegram setWebhook API error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
		)
		return fmt.Errorf("telegram API error [code=%d]: %s", apiResp.ErrorCode, apiResp.Description)
	}

	c.log.Info("webhook registered successfully", "url", url)
	return nil
}

// DeleteWebhook удаляет webhook (нужно перед запуском polling)
func (c *Client) DeleteWebhook(ctx context.Context) error {
	req := struct {
		DropPendingUpdates bool `json:"drop_pending_updates"`
	}{
		DropPendingUpdates: true,
	}

	var apiResp APIResponse
	if err := c.postJSON(ctx, "deleteWebhook", req, &apiResp); err != nil {
		return fmt.Errorf("telegram deleteWebhook failed: %w", err)
	}

	if !apiResp.OK {
		c.log.Warn("telegram deleteWebhook API error",
			"error_code", apiResp.ErrorCode,
			"description", apiResp.Description,
		)
		return fmt.Errorf("telegram API error [code=%d]: %s", apiResp.ErrorCode, apiResp.Description)
	}

	c.log.Info("webhook deleted successfully")
	return nil
}
