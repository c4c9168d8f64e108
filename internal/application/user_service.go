package application

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/ecavus/taskboard/internal/domain/entity"
	repo "github.com/ecavus/taskboard/internal/domain/repository"
	"github.com/ecavus/taskboard/pkg/helpers"
)

var (
	ErrUserNotFound     = errors.New("user not found")
	ErrGCSNotConfigured = errors.New("gcs not configured")
)

const profileCacheTTL = 10 * time.Minute

// UserService covers profile reads/updates and avatar uploads. Redis is an
// optional read-through cache of the profile document; it is never consulted
// for authentication, so token validity stays a pure function of signature
// and expiry.
type UserService struct {
	Repo      repo.UserRepository
	Redis     *redis.Client
	GCS       *storage.Client
	GCSBucket string
	Logger    *logrus.Logger
}

func NewUserService(users repo.UserRepository, rdb *redis.Client, gcs *storage.Client, gcsBucket string, logger *logrus.Logger) *UserService {
	return &UserService{Repo: users, Redis: rdb, GCS: gcs, GCSBucket: gcsBucket, Logger: logger}
}

// Profile is the client-facing projection of a user. The password hash never
// leaves the service layer.
type Profile struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatarUrl"`
}

func profileKey(userID string) string { return "user:profile:" + userID }

func profileOf(u *entity.User) *Profile {
	return &Profile{Name: u.Name, Email: u.Email, AvatarURL: u.AvatarURL}
}

// GetProfile returns the caller's own profile.
func (s *UserService) GetProfile(ctx context.Context, userID string) (*Profile, error) {
	if s.Redis != nil {
		var cached Profile
		if hit, err := helpers.RedisGetJSON(ctx, s.Redis, profileKey(userID), &cached); err == nil && hit {
			return &cached, nil
		}
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p := profileOf(u)
	s.cacheProfile(ctx, userID, p)
	return p, nil
}

type UpdateProfileInput struct {
	Name      string
	AvatarURL string
}

// UpdateProfile replaces name and avatar. A blank avatar falls back to the
// generated placeholder.
func (s *UserService) UpdateProfile(ctx context.Context, userID string, in UpdateProfileInput) (*Profile, error) {
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	u.Name = strings.TrimSpace(in.Name)
	avatar := strings.TrimSpace(in.AvatarURL)
	if avatar == "" {
		avatar = helpers.DefaultAvatarURL(u.Name)
	}
	u.AvatarURL = avatar
	if err := s.Repo.Update(ctx, u); err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	p := profileOf(u)
	s.cacheProfile(ctx, userID, p)
	return p, nil
}

// UploadAvatar stores the image in GCS and points the profile at it.
func (s *UserService) UploadAvatar(ctx context.Context, userID string, r io.Reader, filename, contentType string) (*Profile, error) {
	if s.GCS == nil || s.GCSBucket == "" {
		return nil, ErrGCSNotConfigured
	}
	u, err := s.Repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := filepath.ToSlash(filepath.Join("avatars", userID, uuid.NewString()+ext))
	url, err := helpers.UploadObject(ctx, s.GCS, s.GCSBucket, objectPath, contentType, r)
	if err != nil {
		return nil, err
	}
	u.AvatarURL = url
	if err := s.Repo.Update(ctx, u); err != nil {
		return nil, err
	}
	p := profileOf(u)
	s.cacheProfile(ctx, userID, p)
	return p, nil
}

func (s *UserService) cacheProfile(ctx context.Context, userID string, p *Profile) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisSetJSON(ctx, s.Redis, profileKey(userID), p, profileCacheTTL); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("profile cache write failed")
	}
}
