package notify

import (
	"context"
	"fmt"

	"github.com/wneessen/go-mail"
)

// NotifyError wraps any relay, auth or connectivity failure. A failed
// notification must never affect the save that triggered it.
type NotifyError struct {
	Err error
}

func (e *NotifyError) Error() string {
	return fmt.Sprintf("notify: %v", e.Err)
}

func (e *NotifyError) Unwrap() error { return e.Err }

// Mailer sends plain-text alerts to a single fixed recipient through an
// SMTP relay, STARTTLS on the submission port.
type Mailer struct {
	client    *mail.Client
	sender    string
	recipient string
}

func NewMailer(host string, port int, username, password, sender, recipient string) (*Mailer, error) {
	client, err := mail.NewClient(host,
		mail.WithPort(port),
		mail.WithSMTPAuth(mail.SMTPAuthLogin),
		mail.WithUsername(username),
		mail.WithPassword(password),
		mail.WithTLSPortPolicy(mail.TLSMandatory),
	)
	if err != nil {
		return nil, err
	}

	return &Mailer{client: client, sender: sender, recipient: recipient}, nil
}

func (m *Mailer) buildMessage(subject, body string) (*mail.Msg, error) {
	msg := mail.NewMsg()
	if err := msg.From(m.sender); err != nil {
		return nil, err
	}
	if err := msg.To(m.recipient); err != nil {
		return nil, err
	}
	msg.Subject(subject)
	msg.SetBodyString(mail.TypeTextPlain, body)
	return msg, nil
}

// Notify sends one message. Single attempt, no retries.
func (m *Mailer) Notify(ctx context.Context, subject, body string) error {
	msg, err := m.buildMessage(subject, body)
	if err != nil {
		return &NotifyError{Err: err}
	}
	if err := m.client.DialAndSendWithContext(ctx, msg); err != nil {
		return &NotifyError{Err: err}
	}
	return nil
}
