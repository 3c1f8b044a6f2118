package weather

import (
	"context"
	"fmt"
	"time"

	"github.com/BogdanDubenets/weather-bot-telegram/internal/domain"
)

// GetOrCreateUser получает пользователя по Telegram ID или создаёт нового
func (s *Service) GetOrCreateUser(ctx context.Context, tgUser *domain.TelegramUser, chat *domain.Chat) (*domain.User, error) {
	user, err := s.UserRepo.GetByTelegramID(ctx, tgUser.ID)
	if err == nil && user != nil {
		needsUpdate := false
		if user.FirstName != tgUser.FirstName {
			user.FirstName = tgUser.FirstName
			needsUpdate = true
		}
		if !equalStrPtr(user.LastName, tgUser.LastName) {
			user.LastName = tgUser.LastName
			needsUpdate = true
		}
		if !equalStrPtr(user.Username, tgUser.Username) {
			user.Username = tgUser.Username
			needsUpdate = true
		}
		if user.TelegramChatID != chat.ID {
			user.TelegramChatID = chat.ID
			needsUpdate = true
		}

		if needsUpdate {
			if err := s.UserRepo.Update(ctx, user); err != nil {
				s.Log.Warn("failed to update user",
					"error", err,
					"user_id", user.TelegramUserID,
				)
			}
		} else if err := s.UserRepo.UpdateLastActivity(ctx, user.TelegramUserID); err != nil {
			s.Log.Warn("failed to update last activity",
				"error", err,
				"user_id", user.TelegramUserID,
			)
		}

		return user, nil
	}

	now := time.Now().UTC()
	user = &domain.User{
		TelegramUserID: tgUser.ID,
		TelegramChatID: chat.ID,
		FirstName:      tgUser.FirstName,
		LastName:       tgUser.LastName,
		Username:       tgUser.Username,
		LanguageCode:   tgUser.LanguageCode,
		RegisteredAt:   now,
		LastActivityAt: now,
	}

	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.Log.Info("new user registered",
		"user_id", user.TelegramUserID,
		"username", tgUser.Username,
	)

	return user, nil
}

func equalStrPtr(a, b *string) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}
