package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecavus/taskboard/pkg/helpers"
)

func newGate(t *testing.T) (*helpers.JWTManager, *gin.Engine) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	r := gin.New()
	r.GET("/protected", Auth(jwt, nil), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"userId": c.GetString(CtxUserIDKey)})
	})
	return jwt, r
}

func get(r *gin.Engine, authHeader string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authHeader != "" {
		req.Header.Set("Authorization", authHeader)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthValidToken(t *testing.T) {
	jwt, r := newGate(t)
	token, _, err := jwt.Issue("u1")
	require.NoError(t, err)

	w := get(r, "Bearer "+token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"userId":"u1"}`, w.Body.String())
}

func TestAuthRejections(t *testing.T) {
	jwt, r := newGate(t)

	expired := helpers.NewJWTManager("test-secret", -time.Minute)
	expiredToken, _, err := expired.Issue("u1")
	require.NoError(t, err)

	other := helpers.NewJWTManager("other-secret", time.Hour)
	forged, _, err := other.Issue("u1")
	require.NoError(t, err)

	valid, _, err := jwt.Issue("u1")
	require.NoError(t, err)

	cases := []struct {
		name   string
		header string
	}{
		{"no header", ""},
		{"no bearer prefix", valid},
		{"empty bearer", "Bearer "},
		{"garbage", "Bearer not-a-token"},
		{"expired", "Bearer " + expiredToken},
		{"bad signature", "Bearer " + forged},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := get(r, tc.header)
			assert.Equal(t, http.StatusUnauthorized, w.Code)
			assert.JSONEq(t, `{"error":"Unauthorized"}`, w.Body.String())
		})
	}
}

func TestAuthenticateReasons(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", time.Hour)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	res := Authenticate(req, jwt)
	assert.False(t, res.Authenticated)
	assert.Equal(t, NoToken, res.Reason)

	req.Header.Set("Authorization", "Bearer garbage")
	res = Authenticate(req, jwt)
	assert.False(t, res.Authenticated)
	assert.Equal(t, InvalidToken, res.Reason)
	assert.ErrorIs(t, res.Cause, helpers.ErrTokenMalformed)

	token, _, err := jwt.Issue("u1")
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+token)
	res = Authenticate(req, jwt)
	assert.True(t, res.Authenticated)
	assert.Equal(t, "u1", res.UserID)
}
