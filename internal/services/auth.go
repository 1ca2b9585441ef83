package services

import (
	"context"
	"database/sql"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"golang.org/x/crypto/bcrypt"

	"github.com/warblerhq/warbler/internal/logger"
	"github.com/warblerhq/warbler/internal/models"
)

// Error variables
var (
	ErrMissingField       = errors.New("username, email and password are required")
	ErrUserAlreadyExists  = errors.New("username or email already taken")
	ErrUserDoesNotExist   = errors.New("user does not exist")
	ErrInvalidCredentials = errors.New("invalid username or password")
)

// uniqueViolation is the Postgres error code for a unique constraint hit.
const uniqueViolation = "23505"

// dummyHash is compared against when the username is unknown, so that
// path costs the same as a real password check.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("warbler"), bcrypt.DefaultCost)

// UserReader defines read-only operations for users.
type UserReader interface {
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}

// UserWriter defines write operations for users.
type UserWriter interface {
	Save(ctx context.Context, user *models.User) error
}

// AuthService handles signup and authentication.
type AuthService struct {
	reader UserReader
	writer UserWriter
	events *ActivityPublisher
}

// NewAuthService creates a new AuthService instance.
func NewAuthService(reader UserReader, writer UserWriter, events *ActivityPublisher) *AuthService {
	return &AuthService{
		reader: reader,
		writer: writer,
		events: events,
	}
}

// Signup registers a new user. The password is stored as a bcrypt hash,
// and the image URLs fall back to the stock defaults when empty.
func (svc *AuthService) Signup(ctx context.Context, username, email, password, imageURL string) (*models.User, error) {
	if username == "" || email == "" || password == "" {
		logger.Log.Errorw("signup with missing fields", "username", username, "email", email)
		return nil, ErrMissingField
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, err
	}

	if imageURL == "" {
		imageURL = models.DefaultImageURL
	}

	user := &models.User{
		Username:       username,
		Email:          email,
		PasswordHash:   string(hashedPassword),
		ImageURL:       imageURL,
		HeaderImageURL: models.DefaultHeaderImageURL,
	}

	if err := svc.writer.Save(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			logger.Log.Errorw("user already exists", "username", username, "email", email)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to save user", "err", err)
		return nil, err
	}

	svc.events.Publish(ctx, models.EventUserRegistered, user.ID, 0)

	return user, nil
}

// Authenticate checks the username/password pair and returns the user.
func (svc *AuthService) Authenticate(ctx context.Context, username, password string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			logger.Log.Errorw("user does not exist", "username", username)
			return nil, ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to get user", "err", err)
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("invalid credentials", "username", username)
		return nil, ErrInvalidCredentials
	}

	svc.events.Publish(ctx, models.EventUserLoggedIn, user.ID, 0)

	return user, nil
}
