package response

import (
	"github.com/gin-gonic/gin"
)

// Error writes the flat {"error": message} body the mobile client expects on
// every failure response. Nothing beyond the message ever reaches the client.
func Error(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// AbortError is Error for middleware: it also stops the handler chain.
func AbortError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"error": message})
}
