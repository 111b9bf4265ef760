package utils

import (
	"net/http"

	"github.com/mjbconsultora/website/internal/api/dto/common"

	"github.com/gin-gonic/gin"
)

// HandleSuccess sends a success response with data
func HandleSuccess(c *gin.Context, data interface{}) {
	c.JSON(http.StatusOK, data)
}

// HandleAccepted sends the fixed {"success":true} body
func HandleAccepted(c *gin.Context) {
	c.JSON(http.StatusOK, common.SuccessResponse{Success: true})
}

// HandleEmptyOK answers with 200 and no body, as used for pre-flight requests
func HandleEmptyOK(c *gin.Context) {
	c.AbortWithStatus(http.StatusOK)
}
