package common

// ErrorResponse is the body of every failed API call
type ErrorResponse struct {
	Error  string      `json:"error"`
	Errors interface{} `json:"errors,omitempty"`
}

// SuccessResponse is the body of an accepted submission
type SuccessResponse struct {
	Success bool `json:"success"`
}

// HealthResponse is returned by the health check
type HealthResponse struct {
	Status  string `json:"status"`
	Version string `json:"version"`
}

// User-facing error messages
const (
	MsgSpamDetected     = "Detección de spam (honeypot)"
	MsgCaptchaInvalid   = "Captcha inválido"
	MsgMethodNotAllowed = "Método no permitido"
	MsgInvalidBody      = "Cuerpo de solicitud inválido"
	MsgBodyTooLarge     = "Cuerpo de solicitud demasiado grande"
	MsgInvalidFields    = "Datos inválidos"
	MsgRateLimited      = "Demasiadas solicitudes. Intenta nuevamente más tarde."
	MsgInternal         = "Error interno del servidor"
)

// NewErrorResponse creates a new error API response
func NewErrorResponse(message string, details interface{}) ErrorResponse {
	return ErrorResponse{
		Error:  message,
		Errors: details,
	}
}
