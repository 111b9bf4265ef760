package handlers

import (
	"github.com/mjbconsultora/website/internal/api/dto/common"
	"github.com/mjbconsultora/website/internal/utils"
	"github.com/mjbconsultora/website/internal/version"

	"github.com/gin-gonic/gin"
)

type HealthHandler struct{}

func NewHealthHandler() *HealthHandler {
	return &HealthHandler{}
}

func (h *HealthHandler) Check(c *gin.Context) {
	utils.HandleSuccess(c, common.HealthResponse{
		Status:  "ok",
		Version: version.Version,
	})
}
