package application

import (
	"context"
	"errors"
	"testing"

	"cloud.google.com/go/storage"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecavus/taskboard/internal/domain/entity"
	"github.com/ecavus/taskboard/pkg/helpers"
)

func newUserService(users *fakeUserRepo) *UserService {
	return NewUserService(users, nil, nil, "", testLogger())
}

func seedUser(t *testing.T, users *fakeUserRepo) *entity.User {
	t.Helper()
	u := &entity.User{Name: "Demo User", Email: "demo@gmail.com", Password: "hash", AvatarURL: "http://avatar"}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestGetProfile(t *testing.T) {
	users := newFakeUserRepo()
	u := seedUser(t, users)
	svc := newUserService(users)

	p, err := svc.GetProfile(context.Background(), u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Demo User", p.Name)
	assert.Equal(t, "demo@gmail.com", p.Email)
	assert.Equal(t, "http://avatar", p.AvatarURL)

	_, err = svc.GetProfile(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUpdateProfile(t *testing.T) {
	users := newFakeUserRepo()
	u := seedUser(t, users)
	svc := newUserService(users)

	p, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Name: " New Name ", AvatarURL: "http://new"})
	require.NoError(t, err)
	assert.Equal(t, "New Name", p.Name)
	assert.Equal(t, "http://new", p.AvatarURL)
	assert.Equal(t, "demo@gmail.com", p.Email)
}

func TestUpdateProfileBlankAvatarFallsBack(t *testing.T) {
	users := newFakeUserRepo()
	u := seedUser(t, users)
	svc := newUserService(users)

	p, err := svc.UpdateProfile(context.Background(), u.ID, UpdateProfileInput{Name: "New Name"})
	require.NoError(t, err)
	assert.Equal(t, helpers.DefaultAvatarURL("New Name"), p.AvatarURL)
}

func TestProfileStoreFailurePropagates(t *testing.T) {
	cause := errors.New("connection refused")
	down := &downUserRepo{err: cause}
	svc := NewUserService(down, nil, nil, "", testLogger())

	_, err := svc.GetProfile(context.Background(), "u1")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	_, err = svc.UpdateProfile(context.Background(), "u1", UpdateProfileInput{Name: "New"})
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUserNotFound)

	withGCS := NewUserService(down, nil, &storage.Client{}, "bucket", testLogger())
	_, err = withGCS.UploadAvatar(context.Background(), "u1", nil, "a.png", "image/png")
	assert.ErrorIs(t, err, cause)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestUploadAvatarUnconfigured(t *testing.T) {
	users := newFakeUserRepo()
	u := seedUser(t, users)
	svc := newUserService(users)

	_, err := svc.UploadAvatar(context.Background(), u.ID, nil, "a.png", "image/png")
	assert.ErrorIs(t, err, ErrGCSNotConfigured)
}
