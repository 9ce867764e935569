// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package mail relays contact form submissions to the site owner over SMTP.
package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"mime"
	"mime/multipart"
	"net/mail"
	"net/textproto"
	"strings"
	"time"
)

// ContactMessage is a submission of the contact form.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// senderName is the display name on relayed messages.
const senderName = "Portfolio Contact Form"

// Subject returns the subject line for msg.
func (m ContactMessage) Subject() string {
	return "New contact form submission from " + oneLine(m.Name)
}

// TextBody returns the plain-text part.
func (m ContactMessage) TextBody() string {
	return fmt.Sprintf("Name: %s\nEmail: %s\n\nMessage:\n%s", m.Name, m.Email, m.Message)
}

var htmlBody = template.Must(template.New("contact").Parse(`<div style="font-family: Arial, sans-serif; line-height: 1.6; color: #333;">
  <h2 style="background-color: #4CAF50; color: white; padding: 10px; text-align: center;">New Contact Form Submission</h2>
  <table style="width: 100%; border-collapse: collapse; margin: 20px 0;">
    <tr><td style="padding: 10px; border-bottom: 1px solid #ddd;"><strong>Name:</strong></td><td style="padding: 10px; border-bottom: 1px solid #ddd;">{{.Name}}</td></tr>
    <tr><td style="padding: 10px; border-bottom: 1px solid #ddd;"><strong>Email:</strong></td><td style="padding: 10px; border-bottom: 1px solid #ddd;">{{.Email}}</td></tr>
    <tr><td style="padding: 10px; vertical-align: top;"><strong>Message:</strong></td><td style="padding: 10px;">{{range $i, $line := .Lines}}{{if $i}}<br>{{end}}{{$line}}{{end}}</td></tr>
  </table>
  <footer style="text-align: center; color: #777; font-size: 12px; margin-top: 20px;">This email was sent from your portfolio website.</footer>
</div>
`))

// HTMLBody returns the HTML part. Submitted values are escaped and message
// line breaks become <br>.
func (m ContactMessage) HTMLBody() (string, error) {
	var buf bytes.Buffer
	err := htmlBody.Execute(&buf, struct {
		Name, Email string
		Lines       []string
	}{m.Name, m.Email, strings.Split(m.Message, "\n")})
	if err != nil {
		return "", fmt.Errorf("render contact html: %w", err)
	}
	return buf.String(), nil
}

// Compose builds the RFC 5322 message sent from and to owner, with the
// submitter as Reply-To and text and HTML alternatives.
func Compose(owner string, m ContactMessage, now time.Time) ([]byte, error) {
	html, err := m.HTMLBody()
	if err != nil {
		return nil, err
	}

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	for _, part := range []struct{ ctype, content string }{
		{"text/plain; charset=UTF-8", m.TextBody()},
		{"text/html; charset=UTF-8", html},
	} {
		w, err := mw.CreatePart(textproto.MIMEHeader{
			"Content-Type":              {part.ctype},
			"Content-Transfer-Encoding": {"8bit"},
		})
		if err != nil {
			return nil, fmt.Errorf("create mime part: %w", err)
		}
		if _, err := w.Write([]byte(part.content)); err != nil {
			return nil, fmt.Errorf("write mime part: %w", err)
		}
	}
	if err := mw.Close(); err != nil {
		return nil, fmt.Errorf("close multipart: %w", err)
	}

	from := (&mail.Address{Name: senderName, Address: owner}).String()
	replyTo := (&mail.Address{Name: oneLine(m.Name), Address: oneLine(m.Email)}).String()

	var out bytes.Buffer
	headers := [][2]string{
		{"From", from},
		{"To", owner},
		{"Reply-To", replyTo},
		{"Subject", mime.QEncoding.Encode("utf-8", m.Subject())},
		{"Date", now.Format(time.RFC1123Z)},
		{"MIME-Version", "1.0"},
		{"Content-Type", "multipart/alternative; boundary=" + mw.Boundary()},
	}
	for _, h := range headers {
		fmt.Fprintf(&out, "%s: %s\r\n", h[0], h[1])
	}
	out.WriteString("\r\n")
	out.Write(body.Bytes())
	return out.Bytes(), nil
}

// oneLine drops CR and LF so a value cannot add header lines.
func oneLine(s string) string {
	return strings.NewReplacer("\r", "", "\n", " ").Replace(s)
}
