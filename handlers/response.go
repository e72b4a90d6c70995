package handlers

import (
	"github.com/gin-gonic/gin"

	"careerlog-backend/apperr"
)

// respond writes the success envelope.
func respond(c *gin.Context, status int, data interface{}) {
	c.JSON(status, gin.H{
		"success": true,
		"data":    data,
		"error":   nil,
	})
}

// respondError writes the error envelope with the status mapped from the
// error code.
func respondError(c *gin.Context, err error) {
	appErr := apperr.From(err)
	c.JSON(appErr.Status, gin.H{
		"success": false,
		"data":    nil,
		"error": gin.H{
			"code":    appErr.Code,
			"message": appErr.Message,
		},
	})
}
