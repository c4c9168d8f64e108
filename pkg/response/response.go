// Package response renders the API's JSON bodies. Error bodies are always
// {"error": string}; internal details never cross the boundary.
package response

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Err writes an error body with the given status.
func Err(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"error": msg})
}

// Unauthorized writes the uniform rejection body used by every protected
// endpoint. Which check failed is never exposed to the client.
func Unauthorized(c *gin.Context) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": "Unauthorized"})
}

// Internal writes the generic failure body for unexpected errors.
func Internal(c *gin.Context) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
}

// Message writes a confirmation body.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, gin.H{"message": msg})
}
