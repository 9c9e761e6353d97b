package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/store"
	"github.com/MKhiriev/fitcoach/models"
)

type userService struct {
	users store.UserRepository

	freeDailyMessages int
	now               func() time.Time

	logger *logger.Logger
}

func NewUserService(users store.UserRepository, cfg config.App, logger *logger.Logger) UserService {
	return &userService{
		users:             users,
		freeDailyMessages: cfg.FreeDailyMessages,
		now:               time.Now,
		logger:            logger,
	}
}

// View projects user for clients, counting messages of the current UTC day.
func (s *userService) View(user models.User) models.UserView {
	return user.View(utcDay(s.now()), s.freeDailyMessages)
}

func (s *userService) UpdateProfile(ctx context.Context, user models.User, update models.ProfileUpdate) (models.User, error) {
	if update.IsEmpty() {
		return models.User{}, ErrEmptyProfileUpdate
	}

	if update.Username != nil {
		username := strings.TrimSpace(*update.Username)
		if username == "" || len(username) > maxUsernameLength {
			return models.User{}, ErrInvalidUsername
		}
		update.Username = &username
	}

	updated, err := s.users.UpdateProfile(ctx, user.ID, update)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrUsernameAlreadyExists):
			return models.User{}, ErrUsernameTaken
		case errors.Is(err, store.ErrUserNotFound):
			return models.User{}, ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "userService.UpdateProfile").Int64("user_id", user.ID).Msg("error updating profile")
		return models.User{}, fmt.Errorf("error updating profile: %w", err)
	}

	return updated, nil
}

// Delete soft-deletes the user. The identity-store account is kept.
func (s *userService) Delete(ctx context.Context, user models.User) error {
	if err := s.users.SoftDelete(ctx, user.ID); err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			return ErrUserNotFound
		}
		logger.FromContext(ctx).Err(err).Str("func", "userService.Delete").Int64("user_id", user.ID).Msg("error deleting user")
		return fmt.Errorf("error deleting user: %w", err)
	}

	logger.FromContext(ctx).Info().Int64("user_id", user.ID).Msg("user deleted")
	return nil
}

// utcDay formats t as the YYYY-MM-DD day used by the message counter.
func utcDay(t time.Time) string {
	return t.UTC().Format(time.DateOnly)
}
