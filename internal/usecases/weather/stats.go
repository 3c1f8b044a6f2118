package weather

import (
	"context"
	"fmt"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// handleStats отправляет административную статистику.
// Команда доступна только пользователям из списка ADMIN_IDS.
func (s *Service) handleStats(ctx context.Context, user *domain.User) error {
	if !s.isAdmin(user.TelegramUserID) {
		return s.TelegramClient.SendMessage(ctx, user.TelegramChatID, msgUnknown)
	}

	userCount, err := s.UserRepo.Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count users: %w", err)
	}

	stats, err := s.PaymentRepo.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to get payment stats: %w", err)
	}

	message := fmt.Sprintf(`📊 <b>Статистика бота</b>

👥 Користувачів: %d
💳 Платежів: %d
⭐ Зібрано зірок: %d`,
		userCount,
		stats.TotalPayments,
		stats.TotalStars,
	)

	return s.TelegramClient.SendMessage(ctx, user.TelegramChatID, message)
}
