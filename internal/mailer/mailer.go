// Package mailer submits the report email with the text report attached.
package mailer

import (
	"fmt"
	"strings"

	"github.com/wneessen/go-mail"
)

type Mailer struct {
	host     string
	port     int
	from     string
	password string
}

func New(host string, port int, from, password string) *Mailer {
	return &Mailer{host: host, port: port, from: from, password: password}
}

// Enabled reports whether mail credentials are configured. When they are
// not, emailing is skipped gracefully instead of failing the run.
func (m *Mailer) Enabled() bool {
	return m.from != "" && m.password != ""
}

// SendReport emails the report body with the rendered report attached as a
// text file.
func (m *Mailer) SendReport(recipient, subject, body, filename, attachment string) error {
	if !m.Enabled() {
		return fmt.Errorf("mail credentials not configured")
	}

	msg := mail.NewMsg()
	if err := msg.From(m.from); err != nil {
		return fmt.Errorf("invalid sender address: %w", err)
	}
	if err := msg.To(recipient); err != nil {
		return fmt.Errorf("invalid recipient address: %w", err)
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	if err := msg.AttachReader(filename, strings.NewReader(attachment)); err != nil {
		return fmt.Errorf("attaching report: %w", err)
	}

	client, err := mail.NewClient(m.host,
		mail.WithPort(m.port),
		mail.WithSMTPAuth(mail.SMTPAuthPlain),
		mail.WithUsername(m.from),
		mail.WithPassword(m.password),
		mail.WithTLSPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return fmt.Errorf("creating SMTP client: %w", err)
	}

	if err := client.DialAndSend(msg); err != nil {
		return fmt.Errorf("sending mail: %w", err)
	}
	return nil
}
