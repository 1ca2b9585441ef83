package repositories

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/warblerhq/warbler/internal/logger"
)

const schema = `
CREATE TABLE IF NOT EXISTS users (
	user_id BIGSERIAL PRIMARY KEY,
	username VARCHAR(50) NOT NULL UNIQUE,
	email VARCHAR(100) NOT NULL UNIQUE,
	password_hash VARCHAR(255) NOT NULL,
	image_url VARCHAR(255) NOT NULL DEFAULT '/static/images/default-pic.png',
	header_image_url VARCHAR(255) NOT NULL DEFAULT '/static/images/warbler-hero.jpg',
	bio TEXT,
	location VARCHAR(100),
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	updated_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS messages (
	message_id BIGSERIAL PRIMARY KEY,
	user_id BIGINT NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
	text VARCHAR(140) NOT NULL,
	created_at TIMESTAMP NOT NULL DEFAULT NOW()
);

CREATE TABLE IF NOT EXISTS follows (
	follower_id BIGINT NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
	followed_id BIGINT NOT NULL REFERENCES users (user_id) ON DELETE CASCADE,
	created_at TIMESTAMP NOT NULL DEFAULT NOW(),
	PRIMARY KEY (follower_id, followed_id)
);

CREATE INDEX IF NOT EXISTS idx_messages_user_id ON messages (user_id);
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_follows_followed_id ON follows (followed_id);
`

// ApplySchema creates the tables if they do not exist yet. It is safe to
// run on every startup.
func ApplySchema(ctx context.Context, db *sqlx.DB) error {
	_, err := db.ExecContext(ctx, schema)

	logger.Log.Infow("apply schema", "error", err)

	return err
}
