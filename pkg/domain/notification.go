package domain

// Channel identifies the notification channel a tax result was delivered on.
type Channel string

const (
	// ChannelJSON means the result was returned inline in the HTTP response.
	ChannelJSON Channel = "JSON"
	// ChannelEmail means a PDF report was mailed to the taxpayer.
	ChannelEmail Channel = "EMAIL"
	// ChannelSMS means a text message was sent to the taxpayer's mobile number.
	ChannelSMS Channel = "SMS"
)

// OutcomeStatus represents the delivery status of a notification attempt.
type OutcomeStatus string

const (
	// OutcomeSuccess indicates the provider accepted the notification.
	OutcomeSuccess OutcomeStatus = "SUCCESS"
	// OutcomeFailure indicates the provider rejected the notification; see Err.
	OutcomeFailure OutcomeStatus = "FAILURE"
)

// NotificationOutcome describes the result of dispatching one tax result on
// one channel. It only exists within the scope of a single request's
// handling and is never stored.
type NotificationOutcome struct {
	// Channel is the channel the dispatch was attempted on.
	Channel Channel
	// Status tells whether the provider accepted the notification.
	Status OutcomeStatus
	// MessageID is the provider-assigned identifier; empty unless Status is SUCCESS.
	MessageID string
	// Detail is a human-readable delivery confirmation suitable for the
	// response message, e.g. "Report sent to a@example.com". Empty for the
	// JSON channel.
	Detail string
	// Err carries the provider failure when Status is FAILURE. Dispatchers
	// capture provider errors here instead of returning them, so the request
	// handler can report the failure without crashing.
	Err error
}

// Failed reports whether the notification attempt ended in failure.
func (o NotificationOutcome) Failed() bool { return o.Status == OutcomeFailure }
