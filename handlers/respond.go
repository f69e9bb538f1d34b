package handlers

import (
	"github.com/gin-gonic/gin"

	"soldy/models"
)

// respond wraps a payload in the wire envelope every endpoint uses.
func respond(c *gin.Context, status int, data any) {
	c.JSON(status, models.APIResponse[any]{Data: data, Success: true})
}

// respondError sends a failed envelope with a message.
func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.APIResponse[any]{Message: message, Success: false})
}
