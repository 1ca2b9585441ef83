package repositories

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"

	"github.com/warblerhq/warbler/internal/models"
)

func newMockDB(t *testing.T) (*sqlx.DB, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New()
	assert.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return sqlx.NewDb(db, "sqlmock"), mock
}

func userColumns() []string {
	return []string{
		"user_id", "username", "email", "password_hash", "image_url",
		"header_image_url", "bio", "location", "created_at", "updated_at",
	}
}

func userRow(id int64, username, email string) []driver.Value {
	now := time.Now()
	return []driver.Value{
		id, username, email, "$2a$10$hash", models.DefaultImageURL,
		models.DefaultHeaderImageURL, nil, nil, now, now,
	}
}

func TestUserReadRepository_GetByID(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
			WithArgs(int64(1)).
			WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(userRow(1, "bob", "bob@example.com")...))

		user, err := repo.GetByID(ctx, 1)
		assert.NoError(t, err)
		assert.Equal(t, int64(1), user.ID)
		assert.Equal(t, "bob", user.Username)
		assert.Equal(t, models.DefaultImageURL, user.ImageURL)
		assert.Nil(t, user.Bio)
	})

	t.Run("not found", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`WHERE user_id = $1`)).
			WithArgs(int64(42)).
			WillReturnError(sql.ErrNoRows)

		user, err := repo.GetByID(ctx, 42)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		assert.Nil(t, user)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetByUsername(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE username = $1`)).
		WithArgs("dango").
		WillReturnRows(sqlmock.NewRows(userColumns()).AddRow(userRow(2, "dango", "dango@example.com")...))

	user, err := repo.GetByUsername(ctx, "dango")
	assert.NoError(t, err)
	assert.Equal(t, int64(2), user.ID)
	assert.Equal(t, "dango@example.com", user.Email)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_List(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	t.Run("all users", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`username ILIKE '%' || $1 || '%'`)).
			WithArgs("").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(userRow(1, "bob", "bob@example.com")...).
				AddRow(userRow(2, "dango", "dango@example.com")...))

		users, err := repo.List(ctx, "")
		assert.NoError(t, err)
		assert.Len(t, users, 2)
	})

	t.Run("search", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`username ILIKE '%' || $1 || '%'`)).
			WithArgs("dan").
			WillReturnRows(sqlmock.NewRows(userColumns()).
				AddRow(userRow(2, "dango", "dango@example.com")...))

		users, err := repo.List(ctx, "dan")
		assert.NoError(t, err)
		assert.Len(t, users, 1)
		assert.Equal(t, "dango", users[0].Username)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetFollowers(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	// Followers of user 5 are the rows whose follows edge points at 5.
	mock.ExpectQuery(regexp.QuoteMeta(`WHERE f.followed_id = $1`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userRow(1, "bob", "bob@example.com")...))

	users, err := repo.GetFollowers(ctx, 5)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "bob", users[0].Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserReadRepository_GetFollowing(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserReadRepository(db)
	ctx := context.Background()

	mock.ExpectQuery(regexp.QuoteMeta(`WHERE f.follower_id = $1`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userColumns()).
			AddRow(userRow(5, "dango", "dango@example.com")...))

	users, err := repo.GetFollowing(ctx, 1)
	assert.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "dango", users[0].Username)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Save(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	t.Run("assigns id and timestamps", func(t *testing.T) {
		now := time.Now()
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WithArgs("bob", "bob@example.com", "$2a$10$hash", models.DefaultImageURL, models.DefaultHeaderImageURL).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "created_at", "updated_at"}).
				AddRow(int64(7), now, now))

		user := &models.User{
			Username:       "bob",
			Email:          "bob@example.com",
			PasswordHash:   "$2a$10$hash",
			ImageURL:       models.DefaultImageURL,
			HeaderImageURL: models.DefaultHeaderImageURL,
		}
		err := repo.Save(ctx, user)
		assert.NoError(t, err)
		assert.Equal(t, int64(7), user.ID)
		assert.WithinDuration(t, now, user.CreatedAt, time.Second)
	})

	t.Run("unique violation passes through", func(t *testing.T) {
		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO users`)).
			WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "users_username_key"})

		err := repo.Save(ctx, &models.User{Username: "bob", Email: "other@example.com"})
		var pgErr *pgconn.PgError
		assert.True(t, errors.As(err, &pgErr))
		assert.Equal(t, "23505", pgErr.Code)
	})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Update(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	bio := "warbling"
	mock.ExpectExec(regexp.QuoteMeta(`UPDATE users`)).
		WithArgs(int64(1), "bob", "bob@example.com", models.DefaultImageURL, models.DefaultHeaderImageURL, "warbling", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Update(ctx, &models.User{
		ID:             1,
		Username:       "bob",
		Email:          "bob@example.com",
		ImageURL:       models.DefaultImageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
		Bio:            &bio,
	})
	assert.NoError(t, err)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_Delete(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewUserWriteRepository(db, nil)
	ctx := context.Background()

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	assert.NoError(t, repo.Delete(ctx, 1))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUserWriteRepository_UsesRequestTransaction(t *testing.T) {
	db, mock := newMockDB(t)
	ctx := context.Background()

	mock.ExpectBegin()
	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM users`)).
		WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	tx, err := db.BeginTxx(ctx, nil)
	assert.NoError(t, err)

	repo := NewUserWriteRepository(db, func(context.Context) *sqlx.Tx { return tx })

	assert.NoError(t, repo.Delete(ctx, 9))
	assert.NoError(t, tx.Commit())
	assert.NoError(t, mock.ExpectationsWereMet())
}
