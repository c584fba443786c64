package services

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSMTPMailService_RenderAndBuild(t *testing.T) {
	svc, err := NewSMTPMailService(SMTPConfig{
		From:     "hola@vdpcza.app",
		FromName: "Nuestro rincón",
		AppName:  "vdpcza",
		OTPTTL:   15 * time.Minute,
	})
	require.NoError(t, err)
	s := svc.(*smtpMailService)

	html, text, err := s.renderEmail(EmailData{
		Title:     "Tu acceso",
		Code:      "123456",
		ButtonURL: "https://vdpcza.app/auth/callback?token=abc",
		ButtonTxt: "Entrar",
		ExpiresIn: 15,
		AppName:   "vdpcza",
		Year:      2025,
	})
	require.NoError(t, err)
	assert.Contains(t, html, "123456")
	assert.Contains(t, html, `href="https://vdpcza.app/auth/callback?token=abc"`)
	assert.Contains(t, text, "15 minutos")

	msg := string(s.buildMessage("vale@example.com", "Tu acceso a vdpcza", html, text))
	assert.Contains(t, msg, "To: vale@example.com\r\n")
	assert.Contains(t, msg, "From: =?UTF-8?q?Nuestro_rinc=C3=B3n?= <hola@vdpcza.app>")
	assert.Contains(t, msg, "Content-Type: multipart/alternative")
	assert.True(t, strings.HasSuffix(strings.TrimSpace(msg), "--"))
}
