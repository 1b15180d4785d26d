package utils

import "github.com/gin-gonic/gin"

// SuccessResponse writes the standard success envelope.
func SuccessResponse(c *gin.Context, data interface{}) {
	c.JSON(200, gin.H{
		"success": true,
		"data":    data,
	})
}

// ErrorResponse writes the standard error envelope.
func ErrorResponse(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{
		"success": false,
		"error":   message,
	})
}
