package handlers

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/mjbconsultora/website/internal/api/dto/common"
	"github.com/mjbconsultora/website/internal/api/dto/v1/contact"
	"github.com/mjbconsultora/website/internal/service"
	"github.com/mjbconsultora/website/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// ContactSubmitter is the part of the contact service the handler needs
type ContactSubmitter interface {
	Submit(ctx context.Context, sub *service.Submission) error
}

type ContactHandler struct {
	contactService ContactSubmitter
}

func NewContactHandler(contactService ContactSubmitter) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Handle serves every method on the contact endpoint
func (h *ContactHandler) Handle(c *gin.Context) {
	switch c.Request.Method {
	case http.MethodOptions:
		utils.HandleEmptyOK(c)
	case http.MethodPost:
		h.Submit(c)
	default:
		utils.HandleAPIError(c, service.ErrMethodNotAllowed, http.StatusMethodNotAllowed, common.MsgMethodNotAllowed)
	}
}

func (h *ContactHandler) Submit(c *gin.Context) {
	var req contact.ContactRequest
	if err := bindContact(c, &req); err != nil {
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.MsgInvalidBody)
		return
	}

	err := h.contactService.Submit(c.Request.Context(), req.ToSubmission(utils.GetRealIP(c)))
	if err == nil {
		utils.HandleAccepted(c)
		return
	}

	var validationErr *service.ValidationError
	var captchaErr *service.CaptchaServiceError
	var emailErr *service.EmailServiceError

	switch {
	case errors.Is(err, service.ErrSpamDetected):
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.MsgSpamDetected)
	case errors.As(err, &validationErr):
		utils.HandleAPIErrorWithDetails(c, err, http.StatusBadRequest, common.MsgInvalidFields, validationErr.Fields)
	case errors.Is(err, service.ErrCaptchaInvalid):
		utils.HandleAPIError(c, err, http.StatusBadRequest, common.MsgCaptchaInvalid)
	case errors.As(err, &captchaErr):
		utils.HandleAPIError(c, err, http.StatusInternalServerError, captchaErr.Error())
	case errors.As(err, &emailErr):
		utils.HandleAPIError(c, err, http.StatusInternalServerError, emailErr.Error())
	default:
		utils.HandleAPIError(c, err, http.StatusInternalServerError, common.MsgInternal)
	}
}

// bindContact accepts both JSON and HTML form posts
func bindContact(c *gin.Context, req *contact.ContactRequest) error {
	contentType := c.ContentType()
	if contentType == binding.MIMEPOSTForm || strings.HasPrefix(contentType, binding.MIMEMultipartPOSTForm) {
		return c.ShouldBindWith(req, binding.Form)
	}
	return c.ShouldBindJSON(req)
}
