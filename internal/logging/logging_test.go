package logging

import (
	"bytes"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{Level: "info", File: "x.log", MaxSize: 10}, false},
		{"stdout only", Config{Level: "warn"}, false},
		{"bad level", Config{Level: "verbose", File: "x.log", MaxSize: 10}, true},
		{"zero size with file", Config{Level: "info", File: "x.log"}, true},
		{"negative backups", Config{Level: "info", MaxBackups: -1}, true},
		{"negative age", Config{Level: "info", MaxAge: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := newWriterLogger(&buf, &Config{Level: LevelWarn})

	l.Debug("debug line")
	l.Info("info line")
	l.Warn("warn line")
	l.Error("error line")

	out := buf.String()
	assert.NotContains(t, out, "debug line")
	assert.NotContains(t, out, "info line")
	assert.Contains(t, out, "warn line")
	assert.Contains(t, out, "error line")
}

func TestLogHTTPRequestGated(t *testing.T) {
	var buf bytes.Buffer
	l := newWriterLogger(&buf, &Config{Level: LevelInfo})
	l.LogHTTPRequest("rid", "POST", "/api/contact", "1.2.3.4", 200, 10, "1ms")
	assert.Empty(t, buf.String())

	l = NewTestLogger(&buf)
	l.LogHTTPRequest("rid", "POST", "/api/contact", "1.2.3.4", 200, 10, "1ms")
	assert.Contains(t, buf.String(), "/api/contact")
	assert.Contains(t, buf.String(), "rid")
}

func TestNewLoggerWritesFile(t *testing.T) {
	file := filepath.Join(t.TempDir(), "nested", "api.log")
	l, err := NewLogger(&Config{Level: LevelInfo, File: file, MaxSize: 1})
	require.NoError(t, err)
	defer l.Close()

	l.Info("hello %s", "file")
	assert.FileExists(t, file)
}

func TestWrapError(t *testing.T) {
	assert.Nil(t, WrapError(nil, "ctx"))

	base := errors.New("permission denied")
	err := WrapError(base, "reading reviews")
	assert.EqualError(t, err, "reading reviews: permission denied")
	assert.True(t, errors.Is(err, base))
}

func TestLogHTTPError(t *testing.T) {
	var buf bytes.Buffer
	l := NewTestLogger(&buf)

	l.LogHTTPError("POST", "/api/contact", "1.2.3.4", 429, "Demasiadas solicitudes", nil)
	assert.Contains(t, buf.String(), "/api/contact | Demasiadas solicitudes\n")
	assert.NotContains(t, buf.String(), "<nil>")

	buf.Reset()
	l.LogHTTPError("POST", "/api/contact", "1.2.3.4", 500, "Error interno", errors.New("boom"))
	assert.Contains(t, buf.String(), "| Error interno: boom\n")
}
