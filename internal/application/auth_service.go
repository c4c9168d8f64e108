// Package application contains the use-case services sitting between the
// HTTP handlers and the repositories.
package application

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/ecavus/taskboard/internal/domain/entity"
	repo "github.com/ecavus/taskboard/internal/domain/repository"
	"github.com/ecavus/taskboard/pkg/helpers"
	"github.com/ecavus/taskboard/pkg/mailer"
)

var (
	ErrEmailTaken         = errors.New("email already in use")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// AuthService handles registration and login.
type AuthService struct {
	Repo    repo.UserRepository
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Pub     *helpers.RabbitPublisher // optional; nil skips welcome email
	AppName string
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *helpers.RabbitPublisher, appName string) *AuthService {
	return &AuthService{Repo: users, JWT: jwt, Logger: logger, Pub: pub, AppName: appName}
}

type RegisterInput struct {
	Name      string
	Email     string
	Password  string
	AvatarURL string
}

// NormalizeEmail trims and lowercases an email for storage and lookup.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Register creates a new account. The email uniqueness check runs first; the
// unique index on users.email backs it against concurrent registration.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*entity.User, error) {
	email := NormalizeEmail(in.Email)
	if existing, err := s.Repo.GetByEmail(ctx, email); err == nil && existing != nil {
		return nil, ErrEmailTaken
	} else if err != nil && !errors.Is(err, repo.ErrNotFound) {
		return nil, err
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}
	avatar := strings.TrimSpace(in.AvatarURL)
	if avatar == "" {
		avatar = helpers.DefaultAvatarURL(in.Name)
	}

	u := &entity.User{
		Name:      strings.TrimSpace(in.Name),
		Email:     email,
		Password:  hash,
		AvatarURL: avatar,
	}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repo.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	s.enqueueWelcome(ctx, u)
	return u, nil
}

// Login validates credentials and issues a bearer token. Unknown email and
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return nil, "", time.Time{}, ErrInvalidCredentials
		}
		return nil, "", time.Time{}, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Issue(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}

// enqueueWelcome publishes a welcome email job. Registration never fails on
// queue trouble; the error is logged and dropped.
func (s *AuthService) enqueueWelcome(ctx context.Context, u *entity.User) {
	if s.Pub == nil {
		return
	}
	job := mailer.EmailJob{
		To:       u.Email,
		Template: "welcome",
		Data:     map[string]any{"Name": u.Name, "AppName": s.AppName},
	}
	if err := s.Pub.PublishJSON(ctx, job); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("email", u.Email).Warn("welcome email enqueue failed")
	}
}
