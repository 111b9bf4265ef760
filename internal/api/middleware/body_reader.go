package middleware

import (
	"bytes"
	"io"
	"net/http"

	"github.com/mjbconsultora/website/internal/api/constants"
	"github.com/mjbconsultora/website/internal/api/dto/common"
	"github.com/mjbconsultora/website/internal/utils"

	"github.com/gin-gonic/gin"
)

// PreserveRequestBody reads the request body once, rejecting it when it is
// larger than maxBodySize, and restores it for the handler
func PreserveRequestBody(maxBodySize int64) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.Request.Body == nil || c.Request.Method != http.MethodPost {
			c.Next()
			return
		}

		if c.Request.ContentLength > maxBodySize {
			utils.HandleAPIError(c, nil, http.StatusRequestEntityTooLarge, common.MsgBodyTooLarge)
			return
		}

		// Read one byte past the limit to detect oversized chunked bodies
		bodyBytes, err := io.ReadAll(io.LimitReader(c.Request.Body, maxBodySize+1))
		if err != nil {
			utils.HandleAPIError(c, err, http.StatusBadRequest, common.MsgInvalidBody)
			return
		}

		if int64(len(bodyBytes)) > maxBodySize {
			utils.HandleAPIError(c, nil, http.StatusRequestEntityTooLarge, common.MsgBodyTooLarge)
			return
		}

		c.Request.Body = io.NopCloser(bytes.NewReader(bodyBytes))
		c.Set(constants.ContextKeyRawBody, bodyBytes)

		c.Next()
	}
}
