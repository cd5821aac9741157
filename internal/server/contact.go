package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/smtp"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/Zachkp/portfolio/internal/config"
)

var ErrMailNotConfigured = errors.New("SMTP credentials not configured")

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	Name    string
	Email   string
	Message string
}

// Mailer delivers contact form submissions.
type Mailer interface {
	Send(ctx context.Context, msg ContactMessage) error
}

type sendMailFunc func(addr string, a smtp.Auth, from string, to []string, msg []byte) error

// SMTPMailer sends contact mail through an SMTP relay.
type SMTPMailer struct {
	cfg      config.SMTPConfig
	sendMail sendMailFunc
}

func NewSMTPMailer(cfg config.SMTPConfig) *SMTPMailer {
	return &SMTPMailer{cfg: cfg, sendMail: smtp.SendMail}
}

func (m *SMTPMailer) Send(ctx context.Context, msg ContactMessage) error {
	if m.cfg.User == "" || m.cfg.Pass == "" {
		return ErrMailNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	to := m.cfg.To
	if to == "" {
		to = m.cfg.User
	}

	subject := fmt.Sprintf("Portfolio Contact: %s", headerSafe(msg.Name))
	body := fmt.Sprintf(`
New contact form submission from your portfolio:

Name: %s
Email: %s
Message:
%s

---
Sent from your portfolio contact form
`, msg.Name, msg.Email, msg.Message)

	raw := []byte("To: " + to + "\r\n" +
		"Subject: " + subject + "\r\n" +
		"From: " + m.cfg.User + "\r\n" +
		"Reply-To: " + headerSafe(msg.Email) + "\r\n" +
		"\r\n" +
		body + "\r\n")

	auth := smtp.PlainAuth("", m.cfg.User, m.cfg.Pass, m.cfg.Host)
	if err := m.sendMail(m.cfg.Host+":"+m.cfg.Port, auth, m.cfg.User, []string{to}, raw); err != nil {
		return fmt.Errorf("send mail: %w", err)
	}
	return nil
}

// headerSafe strips line breaks so form input cannot add mail headers.
func headerSafe(s string) string {
	return strings.NewReplacer("\r", "", "\n", "").Replace(s)
}

func (s *Server) handleContact(c *gin.Context) {
	msg := ContactMessage{
		Name:    strings.TrimSpace(c.PostForm("fullName")),
		Email:   strings.TrimSpace(c.PostForm("email")),
		Message: strings.TrimSpace(c.PostForm("message")),
	}
	if msg.Name == "" || msg.Email == "" || msg.Message == "" {
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Please fill in your name, email and a message.",
		})
		return
	}

	if err := s.mailer.Send(c.Request.Context(), msg); err != nil {
		s.logger.Error("sending contact mail", "error", err)
		c.HTML(http.StatusOK, "contact-error.html", gin.H{
			"error": "Sorry, there was an error sending your message. Please try again later.",
		})
		return
	}

	s.logger.Info("contact mail sent", "from", msg.Email)
	c.HTML(http.StatusOK, "contact-success.html", gin.H{
		"success": "Thank you for your message! I'll get back to you soon.",
	})
}
