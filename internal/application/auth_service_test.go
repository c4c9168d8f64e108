package application

import (
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecavus/taskboard/pkg/helpers"
)

func testLogger() *logrus.Logger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}

func newAuthService(users *fakeUserRepo) *AuthService {
	return NewAuthService(users, helpers.NewJWTManager("test-secret", time.Hour), testLogger(), nil, "taskboard")
}

func TestRegisterDefaults(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	u, err := svc.Register(context.Background(), RegisterInput{
		Name:     "  Demo User ",
		Email:    " Demo@Gmail.COM ",
		Password: "demo123",
	})
	require.NoError(t, err)
	assert.Equal(t, "Demo User", u.Name)
	assert.Equal(t, "demo@gmail.com", u.Email)
	assert.Equal(t, helpers.DefaultAvatarURL("  Demo User "), u.AvatarURL)
	assert.NotEqual(t, "demo123", u.Password)
	assert.True(t, helpers.CompareHashAndPassword(u.Password, "demo123"))
}

func TestRegisterEmailTaken(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "A", Email: "demo@gmail.com", Password: "demo123"})
	require.NoError(t, err)

	_, err = svc.Register(context.Background(), RegisterInput{Name: "B", Email: "DEMO@gmail.com", Password: "other"})
	assert.ErrorIs(t, err, ErrEmailTaken)
}

func TestLogin(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Demo", Email: "demo@gmail.com", Password: "demo123"})
	require.NoError(t, err)

	u, token, exp, err := svc.Login(context.Background(), "Demo@Gmail.com ", "demo123")
	require.NoError(t, err)
	assert.Equal(t, "demo@gmail.com", u.Email)
	assert.NotEmpty(t, token)
	assert.True(t, exp.After(time.Now()))

	userID, err := svc.JWT.Verify(token)
	require.NoError(t, err)
	assert.Equal(t, u.ID, userID)
}

func TestLoginRejections(t *testing.T) {
	users := newFakeUserRepo()
	svc := newAuthService(users)

	_, err := svc.Register(context.Background(), RegisterInput{Name: "Demo", Email: "demo@gmail.com", Password: "demo123"})
	require.NoError(t, err)

	_, _, _, err = svc.Login(context.Background(), "demo@gmail.com", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, _, _, err = svc.Login(context.Background(), "nobody@gmail.com", "demo123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLoginStoreFailurePropagates(t *testing.T) {
	cause := errors.New("connection refused")
	svc := NewAuthService(&downUserRepo{err: cause}, helpers.NewJWTManager("test-secret", time.Hour), testLogger(), nil, "taskboard")

	_, _, _, err := svc.Login(context.Background(), "demo@gmail.com", "demo123")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrInvalidCredentials)
}
