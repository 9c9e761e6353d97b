package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fitcoach/internal/logger"
	"github.com/MKhiriev/fitcoach/models"
)

type chatRepository struct {
	*DB
	logger *logger.Logger
}

// NewChatRepository constructs a [ChatRepository] backed by db.
func NewChatRepository(db *DB, logger *logger.Logger) ChatRepository {
	return &chatRepository{
		DB:     db,
		logger: logger,
	}
}

func (c *chatRepository) SaveMessage(ctx context.Context, msg models.ChatMessage) (models.ChatMessage, error) {
	err := c.QueryRowContext(ctx, saveChatMessage, msg.UserID, string(msg.Role), msg.Content).
		Scan(&msg.ID, &msg.UserID, &msg.Role, &msg.Content, &msg.CreatedAt)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("func", "chatRepository.SaveMessage").
			Int64("user_id", msg.UserID).
			Msg("failed to save chat message")
		return models.ChatMessage{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return msg, nil
}

// ListMessages returns the newest messages first.
func (c *chatRepository) ListMessages(ctx context.Context, userID int64, limit int) ([]models.ChatMessage, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListMessagesQuery(userID, limit)
	if err != nil {
		return nil, err
	}

	rows, err := c.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "chatRepository.ListMessages").Int64("user_id", userID).Msg("failed to query chat messages")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	messages := make([]models.ChatMessage, 0, max(limit, 0))
	for rows.Next() {
		var m models.ChatMessage
		if err := rows.Scan(&m.ID, &m.UserID, &m.Role, &m.Content, &m.CreatedAt); err != nil {
			log.Err(err).Str("func", "chatRepository.ListMessages").Int64("user_id", userID).Msg("failed to scan chat message")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, err)
		}
		messages = append(messages, m)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return messages, nil
}
