// Package smssender defines the abstraction for the SMS-sending provider.
// Implementations accept a destination number and a text and either return a
// provider message ID or a delivery error. Destination numbers are expected
// in E.164 format; malformed numbers surface as provider failures rather
// than being validated here.
package smssender

import "context"

// SendRes represents the response of a successful SMS submission.
type SendRes struct {
	// ID is the message identifier assigned by the provider.
	ID string
}

// Client is the abstraction for SMS providers.
//
//go:generate mockgen -package mocksmssender -source=interface.go -destination=mock/mocksmssender.go *
type Client interface {
	// Send submits the text to the given E.164 destination number and returns
	// the provider message ID.
	Send(ctx context.Context, to string, text string) (SendRes, error)
}
