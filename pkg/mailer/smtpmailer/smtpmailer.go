// Package smtpmailer provides a mailer.Sender implementation backed by a
// plain SMTP provider via the go-mail library. The original deployment used
// a hosted mail API; any SMTP-speaking provider works here.
package smtpmailer

import (
	"bytes"
	"context"

	"taxapp/pkg/mailer"
	"taxapp/pkg/serrors"

	gomail "github.com/wneessen/go-mail"

	"github.com/google/uuid"
)

// Options configure the SMTP connection and the fixed sender identity.
type Options struct {
	// Host is the SMTP server hostname.
	Host string
	// Port is the SMTP server port.
	Port int
	// Username authenticates against the SMTP server.
	Username string
	// Password authenticates against the SMTP server.
	Password string
	// From is the fixed sender address all reports are mailed from.
	From string
}

// Mailer talks SMTP and fulfills the mailer.Sender interface. It is safe for
// concurrent use.
type Mailer struct {
	client *gomail.Client
	from   string
}

// New constructs a Mailer from the provided options. It validates the
// connection settings but does not dial; the connection is established per
// send.
func New(opts Options) (*Mailer, error) {
	client, err := gomail.NewClient(opts.Host,
		gomail.WithPort(opts.Port),
		gomail.WithSMTPAuth(gomail.SMTPAuthPlain),
		gomail.WithUsername(opts.Username),
		gomail.WithPassword(opts.Password),
		gomail.WithTLSPolicy(gomail.TLSOpportunistic),
	)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnavailable, err, "could not create SMTP client")
	}

	return &Mailer{client: client, from: opts.From}, nil
}

// BuildMessage composes the MIME message for the given mailer.Message with
// the fixed sender and a fresh Message-ID. Exported so tests can assert on
// the produced MIME without a live SMTP server.
func BuildMessage(from string, msg mailer.Message) (*gomail.Msg, string, error) {
	m := gomail.NewMsg()
	if err := m.From(from); err != nil {
		return nil, "", serrors.Wrap(serrors.ErrUnavailable, err, "invalid sender address %q", from)
	}
	if err := m.To(msg.To); err != nil {
		return nil, "", serrors.Wrap(serrors.ErrUnavailable, err, "invalid recipient address %q", msg.To)
	}

	id := uuid.New().String()
	m.SetMessageIDWithValue(id)
	m.Subject(msg.Subject)
	m.SetBodyString(gomail.TypeTextPlain, msg.Body)

	if msg.Attachment.Filename != "" {
		if err := m.AttachReader(msg.Attachment.Filename, bytes.NewReader(msg.Attachment.Content)); err != nil {
			return nil, "", serrors.Wrap(serrors.ErrUnavailable, err, "could not attach %q", msg.Attachment.Filename)
		}
	}

	return m, id, nil
}

// Send composes and delivers the message, returning the generated message ID
// on success. Delivery failures come back as UNAVAILABLE semantic errors so
// the dispatcher can classify them as provider failures.
func (s *Mailer) Send(ctx context.Context, msg mailer.Message) (mailer.SendRes, error) {
	m, id, err := BuildMessage(s.from, msg)
	if err != nil {
		return mailer.SendRes{}, err
	}

	if err := s.client.DialAndSendWithContext(ctx, m); err != nil {
		return mailer.SendRes{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send email to %q", msg.To)
	}

	return mailer.SendRes{ID: id}, nil
}

// Ensure Mailer conforms to the mailer.Sender interface at compile time.
var _ mailer.Sender = (*Mailer)(nil)
