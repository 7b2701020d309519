package resp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Helpers for the wire shapes the client expects. Errors carry a single
// generic message; the underlying cause never leaves the server.

func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}
func Success(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"success": true})
}
func BadRequest(c *gin.Context, msg string) {
	c.JSON(http.StatusBadRequest, gin.H{"error": msg})
}
func Unauthorized(c *gin.Context, msg string) {
	c.JSON(http.StatusUnauthorized, gin.H{"error": msg})
}
func ServerError(c *gin.Context, msg string) {
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}
