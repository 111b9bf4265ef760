package service

import (
	"fmt"
	"strings"

	"github.com/aymerick/raymond"

	"github.com/mjbconsultora/website/internal/api/sanitization"
)

// PhoneNotSpecified is rendered when the submitter left the phone empty
const PhoneNotSpecified = "No especificado"

// EmailMessage is the notification built from one submission
type EmailMessage struct {
	From    string
	To      string
	ReplyTo string
	Subject string
	HTML    string
	Text    string
}

// {{ }} escapes HTML, so user input cannot inject markup into the body.
var htmlTemplate = raymond.MustParse(`<h2>Nuevo mensaje desde el formulario de contacto</h2>
<p><strong>Nombre:</strong> {{name}}</p>
<p><strong>Email:</strong> {{email}}</p>
<p><strong>Teléfono:</strong> {{phone}}</p>
<p><strong>Mensaje:</strong></p>
<p>{{message}}</p>
`)

var textTemplate = raymond.MustParse(`Nuevo mensaje desde el formulario de contacto

Nombre: {{{name}}}
Email: {{{email}}}
Teléfono: {{{phone}}}

Mensaje:
{{{message}}}
`)

// ComposeMessage builds the notification for sub. The result depends only on its inputs.
func ComposeMessage(from, to string, sub *Submission) (*EmailMessage, error) {
	phone := strings.TrimSpace(sub.Phone)
	if phone == "" {
		phone = PhoneNotSpecified
	}

	ctx := map[string]interface{}{
		"name":    sub.Name,
		"email":   sub.Email,
		"phone":   phone,
		"message": sub.Message,
	}

	html, err := htmlTemplate.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render html body: %w", err)
	}
	text, err := textTemplate.Exec(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to render text body: %w", err)
	}

	return &EmailMessage{
		From:    from,
		To:      to,
		ReplyTo: sanitization.SanitizeEmail(sub.Email),
		Subject: "Nuevo mensaje de " + sanitization.SingleLine(sub.Name),
		HTML:    html,
		Text:    text,
	}, nil
}
