package handlers

import (
	"net/http"

	"github.com/mjbconsultora/website/internal/api/dto/common"
	"github.com/mjbconsultora/website/internal/api/mapper"
	"github.com/mjbconsultora/website/internal/service"
	"github.com/mjbconsultora/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// ReviewLister returns the reviews currently on file
type ReviewLister interface {
	List() ([]service.Review, error)
}

type ReviewHandler struct {
	reviewService ReviewLister
}

func NewReviewHandler(reviewService ReviewLister) *ReviewHandler {
	return &ReviewHandler{reviewService: reviewService}
}

func (h *ReviewHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		utils.HandleEmptyOK(c)
	case http.MethodGet, http.MethodHead:
		h.List(c)
	default:
		utils.HandleAPIError(c, service.ErrMethodNotAllowed, http.StatusMethodNotAllowed, common.MsgMethodNotAllowed)
	}
}

func (h *ReviewHandler) List(c *gin.Context) {
	reviews, err := h.reviewService.List()
	if err != nil {
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgInternal)
		return
	}
	utils.HandleSuccess(c, mapper.ToReviewResponses(reviews))
}
