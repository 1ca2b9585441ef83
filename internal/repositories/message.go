package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

type MessageReadRepository struct {
	db *sqlx.DB
}

func NewMessageReadRepository(db *sqlx.DB) *MessageReadRepository {
	return &MessageReadRepository{db: db}
}

func (r *MessageReadRepository) GetByID(ctx context.Context, id int64) (*models.Message, error) {
	const query = `
		SELECT message_id, user_id, text, created_at
		FROM messages
		WHERE message_id = $1
	`

	var message models.Message
	err := r.db.GetContext(ctx, &message, query, id)

	logger.Log.Infow("get message by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &message, nil
}

// GetByUserID returns the user's own messages, newest first.
func (r *MessageReadRepository) GetByUserID(ctx context.Context, userID int64) ([]models.Message, error) {
	const query = `
		SELECT message_id, user_id, text, created_at
		FROM messages
		WHERE user_id = $1
		ORDER BY created_at DESC, message_id DESC
	`

	var messages []models.Message
	err := r.db.SelectContext(ctx, &messages, query, userID)

	logger.Log.Infow("get messages by user id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(messages),
		"error", err,
	)

	return messages, err
}

// GetTimeline returns the newest messages posted by the user or by anyone
// the user follows, newest first, up to limit rows.
func (r *MessageReadRepository) GetTimeline(ctx context.Context, userID int64, limit int) ([]models.TimelineMessage, error) {
	const query = `
		SELECT m.message_id, m.user_id, m.text, m.created_at, u.username, u.image_url
		FROM messages m
		JOIN users u ON u.user_id = m.user_id
		WHERE m.user_id = $1
		   OR m.user_id IN (SELECT followed_id FROM follows WHERE follower_id = $1)
		ORDER BY m.created_at DESC, m.message_id DESC
		LIMIT $2
	`

	var messages []models.TimelineMessage
	err := r.db.SelectContext(ctx, &messages, query, userID, limit)

	logger.Log.Infow("get timeline",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID, limit},
		"result", len(messages),
		"error", err,
	)

	return messages, err
}

// GetLatest returns the newest messages across all users, newest first.
func (r *MessageReadRepository) GetLatest(ctx context.Context, limit int) ([]models.TimelineMessage, error) {
	const query = `
		SELECT m.message_id, m.user_id, m.text, m.created_at, u.username, u.image_url
		FROM messages m
		JOIN users u ON u.user_id = m.user_id
		ORDER BY m.created_at DESC, m.message_id DESC
		LIMIT $1
	`

	var messages []models.TimelineMessage
	err := r.db.SelectContext(ctx, &messages, query, limit)

	logger.Log.Infow("get latest messages",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{limit},
		"result", len(messages),
		"error", err,
	)

	return messages, err
}

func (r *MessageReadRepository) CountByUserID(ctx context.Context, userID int64) (int64, error) {
	const query = `
		SELECT COUNT(*)
		FROM messages
		WHERE user_id = $1
	`

	var count int64
	err := r.db.GetContext(ctx, &count, query, userID)

	logger.Log.Infow("count messages by user id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", count,
		"error", err,
	)

	return count, err
}

type MessageWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewMessageWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *MessageWriteRepository {
	return &MessageWriteRepository{db: db, txGetter: txGetter}
}

func (r *MessageWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts the message and fills in its generated id and timestamp.
func (r *MessageWriteRepository) Save(ctx context.Context, message *models.Message) error {
	query := `
		INSERT INTO messages (user_id, text, created_at)
		VALUES ($1, $2, NOW())
		RETURNING message_id, created_at
	`
	args := []any{message.UserID, message.Text}

	err := sqlx.GetContext(ctx, r.executor(ctx), message, query, args...)

	logger.Log.Infow("save message",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", message.ID,
		"error", err,
	)

	return err
}

func (r *MessageWriteRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM messages
		WHERE message_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("delete message",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
