// Package mailer defines the abstraction for the email-sending provider.
// Implementations accept a fully composed message with one attachment and
// either return a provider message ID or a delivery error; the provider's
// wire protocol is out of scope for callers.
package mailer

import "context"

// Attachment is a single file attached to an outgoing message.
type Attachment struct {
	// Filename is the name presented to the recipient, e.g. "TaxReport.pdf".
	Filename string
	// Content is the raw attachment payload.
	Content []byte
}

// Message is one outgoing email.
type Message struct {
	// To is the recipient address.
	To string
	// Subject is the subject line.
	Subject string
	// Body is the plain-text body.
	Body string
	// Attachment is the attached document. Zero value means no attachment.
	Attachment Attachment
}

// SendRes represents the response of a successful send.
type SendRes struct {
	// ID is the provider-assigned message identifier.
	ID string
}

// Sender is the abstraction for email providers. A send either succeeds with
// a message ID or fails with an error; there is no partial outcome.
//
//go:generate mockgen -package mockmailer -source=interface.go -destination=mock/mockmailer.go *
type Sender interface {
	Send(ctx context.Context, msg Message) (SendRes, error)
}
