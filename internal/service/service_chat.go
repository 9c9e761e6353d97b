// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/MKhiriev/fitcoach/internal/adapter"
	"github.com/MKhiriev/fitcoach/internal/config"
	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/internal/store"
	"github.com/MKhiriev/fitcoach/models"
)

const (
	defaultHistoryLimit  = 50
	maxHistoryLimit      = 200
	coachContextMessages = 5
	maxMessageLength     = 4000
)

const coachSystemPrompt = `
You are FITlyAI, a licensed virtual health and fitness coach.

IMPORTANT INSTRUCTIONS:
- Always provide comprehensive, detailed fitness advice
- Focus on evidence-based recommendations
- Be encouraging and motivational
- If asked about progress tracking, suggest the dashboard features
- For macro tracking questions, mention the macro tracking tools
- Always prioritize user safety and recommend consulting healthcare providers for medical concerns

Your expertise includes:
- Personalized workout plans
- Nutrition guidance and macro calculations
- Progress tracking strategies
- Motivation and goal setting
- Exercise form and technique
- Recovery and rest protocols

Always maintain a professional, encouraging tone while providing actionable fitness guidance.
`

// Replies stored when the coach cannot answer.
const (
	replyCoachDisabled = "I'm here to help with your fitness journey! However, I need an OpenAI API key to provide personalized responses."
	replyCoachFailed   = "I'm experiencing some technical difficulties. Please try again in a moment."
	replyCoachEmpty    = "I apologize, but I couldn't generate a response at this time."
)

type chatService struct {
	users   store.UserRepository
	chat    store.ChatRepository
	fitness FitnessService
	coach   adapter.Coach

	freeDailyMessages int
	now               func() time.Time

	logger *logger.Logger
}

func NewChatService(
	users store.UserRepository,
	chat store.ChatRepository,
	fitness FitnessService,
	coach adapter.Coach,
	cfg config.App,
	logger *logger.Logger,
) ChatService {
	return &chatService{
		users:             users,
		chat:              chat,
		fitness:           fitness,
		coach:             coach,
		freeDailyMessages: cfg.FreeDailyMessages,
		now:               time.Now,
		logger:            logger,
	}
}

func (s *chatService) History(ctx context.Context, user models.User, limit int) ([]models.ChatMessage, error) {
	if limit <= 0 {
		limit = defaultHistoryLimit
	}
	limit = min(limit, maxHistoryLimit)

	messages, err := s.chat.ListMessages(ctx, user.ID, limit)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("func", "chatService.History").Int64("user_id", user.ID).Msg("error listing messages")
		return nil, fmt.Errorf("error listing messages: %w", err)
	}

	return messages, nil
}

// Send counts the message against the daily allowance before anything is
// stored, so concurrent requests of a free user cannot overshoot it.
func (s *chatService) Send(ctx context.Context, user models.User, message string) (models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	content := strings.TrimSpace(message)
	if content == "" {
		return models.ChatMessage{}, ErrEmptyMessage
	}
	if utf8.RuneCountInString(content) > maxMessageLength {
		return models.ChatMessage{}, ErrMessageTooLong
	}

	if _, err := s.users.IncrementMessageCount(ctx, user.ID, utcDay(s.now()), s.dailyLimit(user)); err != nil {
		if errors.Is(err, store.ErrDailyLimitReached) {
			return models.ChatMessage{}, ErrDailyLimitReached
		}
		log.Err(err).Str("func", "chatService.Send").Int64("user_id", user.ID).Msg("error counting message")
		return models.ChatMessage{}, fmt.Errorf("error counting message: %w", err)
	}

	recent, err := s.chat.ListMessages(ctx, user.ID, coachContextMessages)
	if err != nil {
		log.Warn().Err(err).Int64("user_id", user.ID).Msg("coach context unavailable")
		recent = nil
	}

	if _, err := s.chat.SaveMessage(ctx, models.ChatMessage{UserID: user.ID, Role: models.RoleUser, Content: content}); err != nil {
		log.Err(err).Str("func", "chatService.Send").Int64("user_id", user.ID).Msg("error saving user message")
		return models.ChatMessage{}, fmt.Errorf("error saving message: %w", err)
	}

	actions := s.fitness.ApplyChatActions(ctx, user, content)

	reply := s.reply(ctx, recent, content)
	if len(actions) > 0 {
		reply += "\n\n✅ Actions completed:\n• " + strings.Join(actions, "\n• ")
	}

	saved, err := s.chat.SaveMessage(ctx, models.ChatMessage{UserID: user.ID, Role: models.RoleAssistant, Content: reply})
	if err != nil {
		log.Err(err).Str("func", "chatService.Send").Int64("user_id", user.ID).Msg("error saving coach reply")
		return models.ChatMessage{}, fmt.Errorf("error saving message: %w", err)
	}

	return saved, nil
}

// reply asks the coach with recent as context. recent is newest first.
func (s *chatService) reply(ctx context.Context, recent []models.ChatMessage, content string) string {
	messages := make([]models.CoachMessage, 0, len(recent)+2)
	messages = append(messages, models.CoachMessage{Role: models.RoleSystem, Content: coachSystemPrompt})

	history := slices.Clone(recent)
	slices.Reverse(history)
	for _, m := range history {
		messages = append(messages, models.CoachMessage{Role: m.Role, Content: m.Content})
	}
	messages = append(messages, models.CoachMessage{Role: models.RoleUser, Content: content})

	answer, err := s.coach.Reply(ctx, messages)
	switch {
	case err == nil:
		return answer
	case errors.Is(err, adapter.ErrCoachNotConfigured):
		return replyCoachDisabled
	case errors.Is(err, adapter.ErrEmptyCompletion):
		return replyCoachEmpty
	default:
		logger.FromContext(ctx).Err(err).Str("func", "chatService.reply").Msg("coach reply failed")
		return replyCoachFailed
	}
}

// dailyLimit returns the message allowance of user. Zero means unlimited.
func (s *chatService) dailyLimit(user models.User) int {
	if user.SubscriptionTier.IsPaid() {
		return 0
	}
	return s.freeDailyMessages
}
