package contact

import (
	"github.com/mjbconsultora/website/internal/service"
)

// ContactRequest represents a contact form submission.
// The Spanish keys are what earlier versions of the site's form posted.
type ContactRequest struct {
	Name         string `json:"name" form:"name"`
	Email        string `json:"email" form:"email"`
	Phone        string `json:"phone" form:"phone"`
	Message      string `json:"message" form:"message"`
	Honeypot     string `json:"honeypot" form:"honeypot"`
	CaptchaToken string `json:"captchaToken" form:"captchaToken"`

	Nombre   string `json:"nombre" form:"nombre"`
	Telefono string `json:"telefono" form:"telefono"`
	Mensaje  string `json:"mensaje" form:"mensaje"`
	Website  string `json:"website" form:"website"`
	Token    string `json:"token" form:"token"`
}

// ContactResponse represents the response after submitting a contact form
type ContactResponse struct {
	Success bool `json:"success"`
}

// ToSubmission converts the request to the service payload, preferring canonical keys
func (r ContactRequest) ToSubmission(remoteIP string) *service.Submission {
	return &service.Submission{
		Name:         firstNonEmpty(r.Name, r.Nombre),
		Email:        r.Email,
		Phone:        firstNonEmpty(r.Phone, r.Telefono),
		Message:      firstNonEmpty(r.Message, r.Mensaje),
		Honeypot:     r.Honeypot + r.Website,
		CaptchaToken: firstNonEmpty(r.CaptchaToken, r.Token),
		RemoteIP:     remoteIP,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
