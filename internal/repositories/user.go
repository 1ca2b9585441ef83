package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

func (r *UserReadRepository) GetByID(ctx context.Context, id int64) (*models.User, error) {
	const query = `
		SELECT user_id, username, email, password_hash, image_url, header_image_url,
		       bio, location, created_at, updated_at
		FROM users
		WHERE user_id = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, id)

	logger.Log.Infow("get user by id",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

func (r *UserReadRepository) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `
		SELECT user_id, username, email, password_hash, image_url, header_image_url,
		       bio, location, created_at, updated_at
		FROM users
		WHERE username = $1
	`

	var user models.User
	err := r.db.GetContext(ctx, &user, query, username)

	logger.Log.Infow("get user by username",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{username},
		"error", err,
	)

	if err != nil {
		return nil, err
	}

	return &user, nil
}

// List returns all users, or the users whose username contains search
// when search is non-empty.
func (r *UserReadRepository) List(ctx context.Context, search string) ([]models.User, error) {
	const query = `
		SELECT user_id, username, email, password_hash, image_url, header_image_url,
		       bio, location, created_at, updated_at
		FROM users
		WHERE $1 = '' OR username ILIKE '%' || $1 || '%'
		ORDER BY user_id
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, search)

	logger.Log.Infow("list users",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{search},
		"result", len(users),
		"error", err,
	)

	return users, err
}

// GetFollowers returns the users following the given user.
func (r *UserReadRepository) GetFollowers(ctx context.Context, userID int64) ([]models.User, error) {
	const query = `
		SELECT u.user_id, u.username, u.email, u.password_hash, u.image_url,
		       u.header_image_url, u.bio, u.location, u.created_at, u.updated_at
		FROM users u
		JOIN follows f ON f.follower_id = u.user_id
		WHERE f.followed_id = $1
		ORDER BY u.username
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)

	logger.Log.Infow("get followers",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(users),
		"error", err,
	)

	return users, err
}

// GetFollowing returns the users the given user follows.
func (r *UserReadRepository) GetFollowing(ctx context.Context, userID int64) ([]models.User, error) {
	const query = `
		SELECT u.user_id, u.username, u.email, u.password_hash, u.image_url,
		       u.header_image_url, u.bio, u.location, u.created_at, u.updated_at
		FROM users u
		JOIN follows f ON f.followed_id = u.user_id
		WHERE f.follower_id = $1
		ORDER BY u.username
	`

	var users []models.User
	err := r.db.SelectContext(ctx, &users, query, userID)

	logger.Log.Infow("get following",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{userID},
		"result", len(users),
		"error", err,
	)

	return users, err
}

type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

func (r *UserWriteRepository) executor(ctx context.Context) sqlx.ExtContext {
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			return tx
		}
	}
	return r.db
}

// Save inserts the user and fills in its generated id and timestamps.
// A unique violation on username or email comes back as the driver's
// *pgconn.PgError with code 23505.
func (r *UserWriteRepository) Save(ctx context.Context, user *models.User) error {
	query := `
		INSERT INTO users (username, email, password_hash, image_url, header_image_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, NOW(), NOW())
		RETURNING user_id, created_at, updated_at
	`
	args := []any{user.Username, user.Email, user.PasswordHash, user.ImageURL, user.HeaderImageURL}

	err := sqlx.GetContext(ctx, r.executor(ctx), user, query, args...)

	logger.Log.Infow("save user",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.Username, user.Email},
		"result", user.ID,
		"error", err,
	)

	return err
}

// Update rewrites the profile fields of an existing user.
func (r *UserWriteRepository) Update(ctx context.Context, user *models.User) error {
	query := `
		UPDATE users
		SET username = $2,
		    email = $3,
		    image_url = $4,
		    header_image_url = $5,
		    bio = $6,
		    location = $7,
		    updated_at = NOW()
		WHERE user_id = $1
	`
	args := []any{user.ID, user.Username, user.Email, user.ImageURL, user.HeaderImageURL, user.Bio, user.Location}

	res, err := r.executor(ctx).ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("update user",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.ID, user.Username},
		"result", rowsAffected,
		"error", err,
	)

	return err
}

func (r *UserWriteRepository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM users
		WHERE user_id = $1
	`

	res, err := r.executor(ctx).ExecContext(ctx, query, id)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("delete user",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{id},
		"result", rowsAffected,
		"error", err,
	)

	return err
}
