// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package mail

import (
	"context"
	"crypto/tls"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/smtp"
	"time"
)

// ErrNotConfigured is returned when no SMTP account is set.
var ErrNotConfigured = errors.New("mail: smtp account not configured")

// Sender delivers contact messages.
type Sender interface {
	Send(ctx context.Context, m ContactMessage) error
}

// SMTPConfig holds the relay account. User is both the login and the
// owner address messages are sent from and to.
type SMTPConfig struct {
	Host     string
	Port     string
	User     string
	Password string
}

// SMTPSender relays messages through an SMTP server with STARTTLS.
// Delivery is attempted once.
type SMTPSender struct {
	cfg     SMTPConfig
	timeout time.Duration
}

// NewSMTPSender creates a sender for cfg.
func NewSMTPSender(cfg SMTPConfig) *SMTPSender {
	return &SMTPSender{cfg: cfg, timeout: 30 * time.Second}
}

// Send composes m and delivers it to the owner address.
func (s *SMTPSender) Send(ctx context.Context, m ContactMessage) error {
	if s.cfg.User == "" || s.cfg.Host == "" {
		return ErrNotConfigured
	}

	msg, err := Compose(s.cfg.User, m, time.Now())
	if err != nil {
		return err
	}

	if err := s.deliver(ctx, msg); err != nil {
		slog.Error("contact email failed", "smtp_host", s.cfg.Host, "error", err)
		return fmt.Errorf("send contact email: %w", err)
	}

	slog.Info("contact email sent", "reply_to", m.Email)
	return nil
}

func (s *SMTPSender) deliver(ctx context.Context, msg []byte) error {
	ctx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	addr := net.JoinHostPort(s.cfg.Host, s.cfg.Port)
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", addr)
	if err != nil {
		return fmt.Errorf("dial %s: %w", addr, err)
	}
	if deadline, ok := ctx.Deadline(); ok {
		conn.SetDeadline(deadline)
	}

	c, err := smtp.NewClient(conn, s.cfg.Host)
	if err != nil {
		conn.Close()
		return fmt.Errorf("smtp handshake: %w", err)
	}
	defer c.Close()

	if ok, _ := c.Extension("STARTTLS"); ok {
		if err := c.StartTLS(&tls.Config{ServerName: s.cfg.Host}); err != nil {
			return fmt.Errorf("starttls: %w", err)
		}
	}
	if s.cfg.Password != "" {
		if err := c.Auth(smtp.PlainAuth("", s.cfg.User, s.cfg.Password, s.cfg.Host)); err != nil {
			return fmt.Errorf("smtp auth: %w", err)
		}
	}

	if err := c.Mail(s.cfg.User); err != nil {
		return fmt.Errorf("smtp mail from: %w", err)
	}
	if err := c.Rcpt(s.cfg.User); err != nil {
		return fmt.Errorf("smtp rcpt: %w", err)
	}
	w, err := c.Data()
	if err != nil {
		return fmt.Errorf("smtp data: %w", err)
	}
	if _, err := w.Write(msg); err != nil {
		return fmt.Errorf("smtp write: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("smtp close data: %w", err)
	}
	return c.Quit()
}
