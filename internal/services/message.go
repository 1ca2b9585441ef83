package services

import (
	"context"
	"database/sql"
	"errors"
	"unicode/utf8"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

var (
	ErrEmptyMessage    = errors.New("message text is required")
	ErrMessageTooLong  = errors.New("message text is too long")
	ErrMessageNotFound = errors.New("message does not exist")
	ErrNotMessageOwner = errors.New("message belongs to another user")
)

// DefaultTimelineLimit caps how many messages a timeline render pulls.
const DefaultTimelineLimit = 100

// MessageReader defines read-only operations for messages.
type MessageReader interface {
	GetByID(ctx context.Context, id int64) (*models.Message, error)
	GetByUserID(ctx context.Context, userID int64) ([]models.Message, error)
	GetTimeline(ctx context.Context, userID int64, limit int) ([]models.TimelineMessage, error)
	GetLatest(ctx context.Context, limit int) ([]models.TimelineMessage, error)
	CountByUserID(ctx context.Context, userID int64) (int64, error)
}

// MessageWriter defines write operations for messages.
type MessageWriter interface {
	Save(ctx context.Context, message *models.Message) error
	Delete(ctx context.Context, id int64) error
}

// MessageService handles posting, deleting and reading messages.
type MessageService struct {
	reader MessageReader
	writer MessageWriter
	events *ActivityPublisher
}

// NewMessageService creates a new MessageService instance.
func NewMessageService(reader MessageReader, writer MessageWriter, events *ActivityPublisher) *MessageService {
	return &MessageService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// Post stores a new message owned by the given user.
func (svc *MessageService) Post(ctx context.Context, userID int64, text string) (*models.Message, error) {
	if text == "" {
		return nil, ErrEmptyMessage
	}
	if utf8.RuneCountInString(text) > models.MaxMessageLength {
		return nil, ErrMessageTooLong
	}

	message := &models.Message{
		UserID: userID,
		Text:   text,
	}

	if err := svc.writer.Save(ctx, message); err != nil {
		logger.Log.Errorw("failed to save message", "user_id", userID, "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.EventMessagePosted, userID, message.ID)

	return message, nil
}

// Delete removes the message, which must belong to the given user.
func (svc *MessageService) Delete(ctx context.Context, userID, messageID int64) error {
	message, err := svc.GetByID(ctx, messageID)
	if err != nil {
		return err
	}

	if message.UserID != userID {
		logger.Log.Errorw("delete of another user's message", "user_id", userID, "message_id", messageID)
		return ErrNotMessageOwner
	}

	if err := svc.writer.Delete(ctx, messageID); err != nil {
		logger.Log.Errorw("failed to delete message", "message_id", messageID, "err", err)
		return err
	}

	svc.events.Publish(ctx, models.EventMessageDeleted, userID, messageID)

	return nil
}

// GetByID returns the message with the given id.
func (svc *MessageService) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	message, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrMessageNotFound
		}
		logger.Log.Errorw("failed to get message", "id", id, "err", err)
		return nil, err
	}
	return message, nil
}

// GetByUser returns the user's own messages, newest first.
func (svc *MessageService) GetByUser(ctx context.Context, userID int64) ([]models.Message, error) {
	messages, err := svc.reader.GetByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get user messages", "user_id", userID, "err", err)
		return nil, err
	}
	return messages, nil
}

// Timeline returns the newest messages by the user and everyone they
// follow.
func (svc *MessageService) Timeline(ctx context.Context, userID int64, limit int) ([]models.TimelineMessage, error) {
	if limit <= 0 {
		limit = DefaultTimelineLimit
	}

	messages, err := svc.reader.GetTimeline(ctx, userID, limit)
	if err != nil {
		logger.Log.Errorw("failed to get timeline", "user_id", userID, "err", err)
		return nil, err
	}
	return messages, nil
}

// Latest returns the newest messages across all users.
func (svc *MessageService) Latest(ctx context.Context, limit int) ([]models.TimelineMessage, error) {
	if limit <= 0 {
		limit = DefaultTimelineLimit
	}

	messages, err := svc.reader.GetLatest(ctx, limit)
	if err != nil {
		logger.Log.Errorw("failed to get latest messages", "err", err)
		return nil, err
	}
	return messages, nil
}

// CountByUser returns how many messages the user has posted.
func (svc *MessageService) CountByUser(ctx context.Context, userID int64) (int64, error) {
	count, err := svc.reader.CountByUserID(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to count messages", "user_id", userID, "err", err)
		return 0, err
	}
	return count, nil
}
