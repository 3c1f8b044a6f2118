package telegram

import (
	"crypto/subtle"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
	telegramService "github.com/BogdanDubenets/weather-bot-telegram/internal/services/telegram"
)

type Controller struct {
	TgService     *telegramService.Service
	WebhookSecret string
	Log           *slog.Logger
}

func New(TgService *telegramService.Service, webhookSecret string, log *slog.Logger) *Controller {
	return &Controller{
		TgService:     TgService,
		WebhookSecret: webhookSecret,
		Log:           log,
	}
}

func (c *Controller) RegisterRoutes(router *gin.Engine) {
	router.POST("/webhook", c.handleWebhook)
}

func (c *Controller) handleWebhook(ctx *gin.Context) {
	secretToken := ctx.GetHeader("X-Telegram-Bot-Api-Secret-Token")
	if secretToken == "" {
		c.Log.Error("secret token is required")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "secret token required"})
		return
	}

	if subtle.ConstantTimeCompare([]byte(secretToken), []byte(c.WebhookSecret)) != 1 {
		c.Log.Warn("webhook secret mismatch")
		ctx.JSON(http.StatusUnauthorized, gin.H{"error": "invalid secret token"})
		return
	}

	var update domain.Update

	if err := ctx.ShouldBindJSON(&update); err != nil {
		c.Log.Error("failed to bind webhook request",
			"error", err,
		)
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	c.Log.Debug("received webhook update",
		"update_id", update.UpdateID,
	)

	if err := c.TgService.HandleUpdate(ctx.Request.Context(), &update); err != nil {
		c.Log.Error("failed to handle update",
			"error", err,
			"update_id", update.UpdateID,
		)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": "failed to process update"})
		return
	}

	// Telegram ожидает 200 OK в ответ
	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
