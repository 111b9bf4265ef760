package server

import (
	"github.com/mjbconsultora/website/internal/api/handlers"
)

// Services holds the domain services the HTTP layer delegates to
type Services struct {
	Contact handlers.ContactSubmitter
	Reviews handlers.ReviewLister
}
