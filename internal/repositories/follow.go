package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/warblerhq/warbler/internal/logger"
)

type FollowReadRepository struct {
	db *sqlx.DB
}

func NewFollowReadRepository(db *sqlx.DB) *FollowReadRepository {
	return &FollowReadRepository{db: db}
}

// Exists reports whether follower already follows followed.
func (r *FollowReadRepository) Exists(ctx context.Context, followerID, followedID int64) (bool, error) {
	const query = `
		SELECT EXISTS (
			SELECT 1
			FROM follows
			WHERE follower_id = $1 AND followed_id = $2
		)
	`

	var exists bool
	err := r.db.GetContext(ctx, &exists, query, followerID, followedID)

	logger.Log.Infow("follow exists",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{followerID, followedID},
		"result", exists,
		"error", err,
	)

	return exists, err
}

type FollowWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewFollowWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *FollowWriteRepository {
	return &FollowWriteRepository{db: db, txGetter: txGetter}
}

func (r *FollowWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save records that follower follows followed. Saving an edge that is
// already present is a no-op.
func (r *FollowWriteRepository) Save(ctx context.Context, followerID, followedID int64) error {
	query := `
		INSERT INTO follows (follower_id, followed_id, created_at)
		VALUES ($1, $2, NOW())
		ON CONFLICT (follower_id, followed_id) DO NOTHING
	`
	args := []any{followerID, followedID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("save follow",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *FollowWriteRepository) Delete(ctx context.Context, followerID, followedID int64) error {
	query := `
		DELETE FROM follows
		WHERE follower_id = $1 AND followed_id = $2
	`
	args := []any{followerID, followedID}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("delete follow",
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", rowsAffected,
		"error", err,
	)

	return err
}
