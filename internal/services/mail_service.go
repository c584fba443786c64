package services

import (
	"bytes"
	"crypto/tls"
	"fmt"
	"html/template"
	"mime"
	"net"
	"net/smtp"
	"strings"
	"time"
)

type IMailService interface {
	SendSignInLink(to, link, code string) error
}

// SMTPConfig holds SMTP and branding settings.
type SMTPConfig struct {
	Host       string
	Port       int // 587 for STARTTLS, 465 for SMTPS
	Username   string
	Password   string
	From       string
	FromName   string
	UseSSL     bool // implicit TLS (SMTPS)
	RequireTLS bool // fail when STARTTLS is not offered

	AppName string
	OTPTTL  time.Duration
}

type smtpMailService struct {
	cfg     SMTPConfig
	htmlTpl *template.Template
	textTpl *template.Template
}

func NewSMTPMailService(cfg SMTPConfig) (IMailService, error) {
	htmlTpl, err := template.New("signInHTML").Parse(signInHTMLTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse html template: %w", err)
	}
	textTpl, err := template.New("signInText").Parse(signInTextTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse text template: %w", err)
	}

	return &smtpMailService{
		cfg:     cfg,
		htmlTpl: htmlTpl,
		textTpl: textTpl,
	}, nil
}

func (s *smtpMailService) SendSignInLink(to, link, code string) error {
	subject := fmt.Sprintf("Tu acceso a %s", s.cfg.AppName)

	html, text, err := s.renderEmail(EmailData{
		Title:     subject,
		Intro:     "Pulsa el botón para entrar. Si prefieres, escribe este código en la pantalla de acceso:",
		Code:      code,
		ButtonURL: link,
		ButtonTxt: "Entrar",
		ExpiresIn: int(s.cfg.OTPTTL.Minutes()),
		AppName:   s.cfg.AppName,
		Year:      time.Now().Year(),
	})
	if err != nil {
		return err
	}
	return s.send(to, subject, html, text)
}

type EmailData struct {
	Title     string
	Intro     string
	Code      string
	ButtonURL string
	ButtonTxt string
	ExpiresIn int
	AppName   string
	Year      int
}

const signInHTMLTemplate = `<!doctype html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width,initial-scale=1">
  <title>{{.Title}}</title>
  <style>
    body { margin: 0; padding: 0; background: #0f0a14; color: #f8fafc; font-family: Georgia, "Times New Roman", serif; }
    .wrapper { width: 100%; padding: 40px 16px; box-sizing: border-box; }
    .card { max-width: 520px; margin: 0 auto; background: #1c1222; border-radius: 24px; border: 1px solid rgba(251, 113, 133, 0.2); overflow: hidden; }
    .header { padding: 28px 32px 12px; color: #fb7185; font-size: 14px; letter-spacing: 4px; text-transform: uppercase; }
    .body { padding: 12px 32px 32px; }
    h1 { margin: 0 0 16px; font-size: 26px; font-weight: normal; }
    p { margin: 0 0 20px; line-height: 1.6; color: #cbd5e1; font-size: 16px; }
    .code { font-family: "Courier New", monospace; font-size: 32px; letter-spacing: 10px; color: #fda4af; margin: 8px 0 24px; }
    .btn { display: inline-block; padding: 14px 32px; background: #f43f5e; color: #ffffff !important; text-decoration: none; border-radius: 16px; font-family: Helvetica, Arial, sans-serif; font-size: 13px; font-weight: bold; letter-spacing: 3px; text-transform: uppercase; }
    .muted { color: #94a3b8; font-size: 12px; word-break: break-all; }
    .footer { padding: 20px 32px; color: #64748b; font-size: 12px; text-align: center; border-top: 1px solid rgba(148, 163, 184, 0.1); }
  </style>
</head>
<body>
  <div class="wrapper">
    <div class="card">
      <div class="header">{{.AppName}}</div>
      <div class="body">
        <h1>{{.Title}}</h1>
        <p>{{.Intro}}</p>
        <div class="code">{{.Code}}</div>
        {{if .ButtonURL}}
          <p><a class="btn" href="{{.ButtonURL}}">{{.ButtonTxt}}</a></p>
          <p class="muted">{{.ButtonURL}}</p>
        {{end}}
        {{if .ExpiresIn}}<p class="muted">El enlace caduca en {{.ExpiresIn}} minutos.</p>{{end}}
      </div>
      <div class="footer">&copy; {{.Year}} {{.AppName}}</div>
    </div>
  </div>
</body>
</html>`

const signInTextTemplate = `{{.Title}}

{{.Intro}}

    {{.Code}}

{{if .ButtonURL}}{{.ButtonURL}}
{{end}}{{if .ExpiresIn}}
El enlace caduca en {{.ExpiresIn}} minutos.
{{end}}
{{.AppName}} (c) {{.Year}}
`

func (s *smtpMailService) renderEmail(data EmailData) (html string, text string, err error) {
	var hb, tb bytes.Buffer

	if err = s.htmlTpl.Execute(&hb, data); err != nil {
		return "", "", err
	}
	if err = s.textTpl.Execute(&tb, data); err != nil {
		return "", "", err
	}
	return hb.String(), tb.String(), nil
}

func (s *smtpMailService) buildMessage(to, subject, htmlBody, textBody string) []byte {
	boundary := fmt.Sprintf("mixed_%d", time.Now().UnixNano())

	var msg bytes.Buffer
	write := func(format string, a ...any) { _, _ = fmt.Fprintf(&msg, format, a...) }

	write("From: %s\r\n", s.formatFromHeader())
	write("To: %s\r\n", to)
	write("Subject: %s\r\n", mime.BEncoding.Encode("UTF-8", subject))
	write("Date: %s\r\n", time.Now().Format(time.RFC1123Z))
	write("MIME-Version: 1.0\r\n")
	write("Content-Type: multipart/alternative; boundary=%q\r\n", boundary)
	write("\r\n")

	write("--%s\r\n", boundary)
	write("Content-Type: text/plain; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", textBody)

	write("--%s\r\n", boundary)
	write("Content-Type: text/html; charset=UTF-8\r\n")
	write("Content-Transfer-Encoding: 8bit\r\n\r\n")
	write("%s\r\n\r\n", htmlBody)

	write("--%s--\r\n", boundary)
	return msg.Bytes()
}

func (s *smtpMailService) send(to, subject, htmlBody, textBody string) error {
	msg := s.buildMessage(to, subject, htmlBody, textBody)
	addr := net.JoinHostPort(s.cfg.Host, fmt.Sprint(s.cfg.Port))
	auth := smtp.PlainAuth("", s.cfg.Username, s.cfg.Password, s.cfg.Host)
	tlsCfg := &tls.Config{ServerName: s.cfg.Host, MinVersion: tls.VersionTLS12}

	var conn net.Conn
	var err error
	dialer := &net.Dialer{Timeout: 10 * time.Second}
	if s.cfg.UseSSL {
		conn, err = tls.DialWithDialer(dialer, "tcp", addr, tlsCfg)
	} else {
		conn, err = dialer.Dial("tcp", addr)
	}
	if err != nil {
		return err
	}
	defer conn.Close()

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		return err
	}
	defer c.Quit()

	if !s.cfg.UseSSL {
		if ok, _ := c.Extension("STARTTLS"); ok {
			if err = c.StartTLS(tlsCfg); err != nil {
				return err
			}
		} else if s.cfg.RequireTLS {
			return fmt.Errorf("server does not support STARTTLS and RequireTLS=true")
		}
	}

	if s.cfg.Username != "" {
		if err = c.Auth(auth); err != nil {
			return err
		}
	}
	if err = c.Mail(s.cfg.From); err != nil {
		return err
	}
	if err = c.Rcpt(to); err != nil {
		return err
	}
	w, err := c.Data()
	if err != nil {
		return err
	}
	if _, err = w.Write(msg); err != nil {
		return err
	}
	return w.Close()
}

func (s *smtpMailService) formatFromHeader() string {
	name := strings.TrimSpace(s.cfg.FromName)
	if name == "" {
		return s.cfg.From
	}
	return fmt.Sprintf("%s <%s>", mime.QEncoding.Encode("UTF-8", name), s.cfg.From)
}
