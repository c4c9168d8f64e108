package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/ecavus/taskboard/pkg/helpers"
	"github.com/ecavus/taskboard/pkg/response"
)

// CtxUserIDKey is where the gate publishes the authenticated user id.
const CtxUserIDKey = "userID"

// RejectReason says why the gate refused a request. Both reasons map to the
// same 401 body; the distinction exists for logs and tests.
type RejectReason int

const (
	NoToken RejectReason = iota
	InvalidToken
)

// AuthResult is the explicit outcome of the authorization gate: either an
// authenticated identity or a rejection. Callers branch on Authenticated
// instead of sniffing result shapes.
type AuthResult struct {
	Authenticated bool
	UserID        string
	Reason        RejectReason
	Cause         error // verifier's tagged cause, for logging only
}

// Authenticate extracts the bearer token from the Authorization header and
// verifies it.
func Authenticate(r *http.Request, jwt *helpers.JWTManager) AuthResult {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if header == "" || token == header || token == "" {
		return AuthResult{Reason: NoToken}
	}
	userID, err := jwt.Verify(token)
	if err != nil {
		return AuthResult{Reason: InvalidToken, Cause: err}
	}
	return AuthResult{Authenticated: true, UserID: userID}
}

// Auth is the gin middleware form of the gate. Every protected endpoint runs
// it before any data access; any rejection yields a uniform 401 body.
func Auth(jwt *helpers.JWTManager, logger *logrus.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		res := Authenticate(c.Request, jwt)
		if !res.Authenticated {
			if logger != nil && res.Reason == InvalidToken {
				logger.WithError(res.Cause).WithField("path", c.FullPath()).Debug("token rejected")
			}
			response.Unauthorized(c)
			c.Abort()
			return
		}
		c.Set(CtxUserIDKey, res.UserID)
		c.Next()
	}
}
