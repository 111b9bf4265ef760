package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeMessage(t *testing.T) {
	sub := &Submission{Name: "Ana", Email: "ana@x.com", Phone: "+54 11 4444-5555", Message: "Hola"}

	msg, err := ComposeMessage("from@x.com", "to@x.com", sub)
	require.NoError(t, err)

	assert.Equal(t, "from@x.com", msg.From)
	assert.Equal(t, "to@x.com", msg.To)
	assert.Equal(t, "Nuevo mensaje de Ana", msg.Subject)
	assert.Contains(t, msg.HTML, "<p><strong>Teléfono:</strong> +54 11 4444-5555</p>")
	assert.NotContains(t, msg.HTML, PhoneNotSpecified)

	again, err := ComposeMessage("from@x.com", "to@x.com", sub)
	require.NoError(t, err)
	assert.Equal(t, msg, again)
}

func TestComposeMessage_NoPhone(t *testing.T) {
	msg, err := ComposeMessage("f@x.com", "t@x.com", &Submission{Name: "Ana", Email: "ana@x.com", Message: "Hola"})
	require.NoError(t, err)
	assert.Contains(t, msg.HTML, "<p><strong>Teléfono:</strong> No especificado</p>")
	assert.Contains(t, msg.Text, "Teléfono: No especificado")
}

func TestComposeMessage_EscapesMarkup(t *testing.T) {
	sub := &Submission{
		Name:    "Eve <script>",
		Email:   "eve@x.com",
		Message: `<img src=x onerror="alert(1)">`,
	}

	msg, err := ComposeMessage("f@x.com", "t@x.com", sub)
	require.NoError(t, err)

	assert.NotContains(t, msg.HTML, "<script>")
	assert.NotContains(t, msg.HTML, "<img")
	assert.Contains(t, msg.HTML, "&lt;script&gt;")
	assert.Contains(t, msg.Text, `<img src=x onerror="alert(1)">`)
}

func TestComposeMessage_SubjectHeaderSafe(t *testing.T) {
	sub := &Submission{Name: "Ana\r\nBcc: victim@x.com", Email: "ana@x.com\n", Message: "Hola"}

	msg, err := ComposeMessage("f@x.com", "t@x.com", sub)
	require.NoError(t, err)

	assert.NotContains(t, msg.Subject, "\n")
	assert.NotContains(t, msg.Subject, "\r")
	assert.Equal(t, "Nuevo mensaje de Ana Bcc: victim@x.com", msg.Subject)
	assert.Equal(t, "ana@x.com", msg.ReplyTo)
}
