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

// ProfileReader defines read-only operations for user profiles.
type ProfileReader interface {
	GetByID(ctx context.Context, id int64) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
	List(ctx context.Context, search string) ([]models.User, error)
	GetFollowers(ctx context.Context, userID int64) ([]models.User, error)
	GetFollowing(ctx context.Context, userID int64) ([]models.User, error)
}

// ProfileWriter defines write operations for user profiles.
type ProfileWriter interface {
	Update(ctx context.Context, user *models.User) error
	Delete(ctx context.Context, id int64) error
}

// FollowReader defines read-only operations for follow edges.
type FollowReader interface {
	Exists(ctx context.Context, followerID, followedID int64) (bool, error)
}

// FollowWriter defines write operations for follow edges.
type FollowWriter interface {
	Save(ctx context.Context, followerID, followedID int64) error
	Delete(ctx context.Context, followerID, followedID int64) error
}

// ProfileUpdate carries the editable profile fields.
type ProfileUpdate struct {
	Username       string
	Email          string
	ImageURL       string
	HeaderImageURL string
	Bio            *string
	Location       *string
}

// UserService handles profiles and the follow graph.
type UserService struct {
	reader      ProfileReader
	writer      ProfileWriter
	followRead  FollowReader
	followWrite FollowWriter
	events      *ActivityPublisher
}

// NewUserService creates a new UserService instance.
func NewUserService(
	reader ProfileReader,
	writer ProfileWriter,
	followRead FollowReader,
	followWrite FollowWriter,
	events *ActivityPublisher,
) *UserService {
	return &UserService{
		reader:      reader,
		writer:      writer,
		followRead:  followRead,
		followWrite: followWrite,
		events:      events,
	}
}

// GetByID returns the user with the given id.
func (svc *UserService) GetByID(ctx context.Context, id int64) (*models.User, error) {
	user, err := svc.reader.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to get user", "id", id, "err", err)
		return nil, err
	}
	return user, nil
}

// GetByUsername returns the user with the given username.
func (svc *UserService) GetByUsername(ctx context.Context, username string) (*models.User, error) {
	user, err := svc.reader.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrUserDoesNotExist
		}
		logger.Log.Errorw("failed to get user", "username", username, "err", err)
		return nil, err
	}
	return user, nil
}

// List returns all users, filtered by a username substring when search
// is non-empty.
func (svc *UserService) List(ctx context.Context, search string) ([]models.User, error) {
	users, err := svc.reader.List(ctx, search)
	if err != nil {
		logger.Log.Errorw("failed to list users", "search", search, "err", err)
		return nil, err
	}
	return users, nil
}

// Followers returns the users following the given user.
func (svc *UserService) Followers(ctx context.Context, userID int64) ([]models.User, error) {
	if _, err := svc.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	users, err := svc.reader.GetFollowers(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get followers", "id", userID, "err", err)
		return nil, err
	}
	return users, nil
}

// Following returns the users the given user follows.
func (svc *UserService) Following(ctx context.Context, userID int64) ([]models.User, error) {
	if _, err := svc.GetByID(ctx, userID); err != nil {
		return nil, err
	}

	users, err := svc.reader.GetFollowing(ctx, userID)
	if err != nil {
		logger.Log.Errorw("failed to get following", "id", userID, "err", err)
		return nil, err
	}
	return users, nil
}

// IsFollowing reports whether follower currently follows followed.
func (svc *UserService) IsFollowing(ctx context.Context, followerID, followedID int64) (bool, error) {
	exists, err := svc.followRead.Exists(ctx, followerID, followedID)
	if err != nil {
		logger.Log.Errorw("failed to check follow edge", "follower", followerID, "followed", followedID, "err", err)
		return false, err
	}
	return exists, nil
}

// Follow makes follower follow followed. Following an already followed
// user is a no-op.
func (svc *UserService) Follow(ctx context.Context, followerID, followedID int64) error {
	if _, err := svc.GetByID(ctx, followedID); err != nil {
		return err
	}

	if err := svc.followWrite.Save(ctx, followerID, followedID); err != nil {
		logger.Log.Errorw("failed to save follow edge", "follower", followerID, "followed", followedID, "err", err)
		return err
	}

	svc.events.Publish(ctx, models.EventUserFollowed, followerID, followedID)

	return nil
}

// Unfollow removes the follower → followed edge if present.
func (svc *UserService) Unfollow(ctx context.Context, followerID, followedID int64) error {
	if _, err := svc.GetByID(ctx, followedID); err != nil {
		return err
	}

	if err := svc.followWrite.Delete(ctx, followerID, followedID); err != nil {
		logger.Log.Errorw("failed to delete follow edge", "follower", followerID, "followed", followedID, "err", err)
		return err
	}

	svc.events.Publish(ctx, models.EventUserUnfollowed, followerID, followedID)

	return nil
}

// UpdateProfile rewrites the user's profile after re-checking their
// password. Empty image URLs fall back to the stock defaults.
func (svc *UserService) UpdateProfile(ctx context.Context, userID int64, password string, update ProfileUpdate) (*models.User, error) {
	user, err := svc.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		logger.Log.Errorw("profile update with wrong password", "id", userID)
		return nil, ErrInvalidCredentials
	}

	if update.Username == "" || update.Email == "" {
		return nil, ErrMissingField
	}
	if update.ImageURL == "" {
		update.ImageURL = models.DefaultImageURL
	}
	if update.HeaderImageURL == "" {
		update.HeaderImageURL = models.DefaultHeaderImageURL
	}

	user.Username = update.Username
	user.Email = update.Email
	user.ImageURL = update.ImageURL
	user.HeaderImageURL = update.HeaderImageURL
	user.Bio = update.Bio
	user.Location = update.Location

	if err := svc.writer.Update(ctx, user); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			logger.Log.Errorw("profile update hits taken username or email", "id", userID, "username", update.Username)
			return nil, ErrUserAlreadyExists
		}
		logger.Log.Errorw("failed to update user", "id", userID, "err", err)
		return nil, err
	}

	return user, nil
}

// Delete removes the user. Their messages and follow edges go with them.
func (svc *UserService) Delete(ctx context.Context, userID int64) error {
	if err := svc.writer.Delete(ctx, userID); err != nil {
		logger.Log.Errorw("failed to delete user", "id", userID, "err", err)
		return err
	}
	return nil
}
