// Package twiliosms provides an smssender.Client implementation backed by
// the Twilio Messages REST API.
package twiliosms

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"taxapp/pkg/serrors"
	"taxapp/pkg/smssender"

	"github.com/go-faster/errors"
)

// defaultBaseURL is the Twilio API root. Overridable for tests.
const defaultBaseURL = "https://api.twilio.com"

// Client talks to the Twilio Messages API and fulfills the smssender.Client
// interface. It is safe for concurrent use.
type Client struct {
	httpClient *http.Client // httpClient performs HTTP requests to Twilio
	baseURL    string
	accountSID string // accountSID identifies the Twilio account (also the basic auth user)
	authToken  string // authToken is the basic auth secret
	from       string // from is the provisioned sender number messages originate from
}

// Option customizes the Client.
type Option func(*Client)

// WithBaseURL overrides the API root, used by tests to point the client at a
// fake server.
func WithBaseURL(baseURL string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(baseURL, "/") }
}

// New constructs a Client that uses the provided http.Client and account
// credentials to interact with the Twilio API.
func New(httpClient *http.Client, accountSID, authToken, from string, opts ...Option) *Client {
	c := &Client{
		httpClient: httpClient,
		baseURL:    defaultBaseURL,
		accountSID: accountSID,
		authToken:  authToken,
		from:       from,
	}
	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Send submits the text to the given destination number.
// It returns the provider message SID on success. Client-side rejections
// (invalid number, bad credentials) and provider outages both come back as
// UNAVAILABLE semantic errors carrying the provider's message.
func (c *Client) Send(ctx context.Context, to string, text string) (smssender.SendRes, error) {
	// https://www.twilio.com/docs/messaging/api/message-resource#create-a-message-resource
	form := url.Values{}
	form.Set("To", to)
	form.Set("From", c.from)
	form.Set("Body", text)

	endpoint := c.baseURL + "/2010-04-01/Accounts/" + c.accountSID + "/Messages.json"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return smssender.SendRes{}, errors.Wrap(err, "could not create request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(c.accountSID, c.authToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return smssender.SendRes{}, serrors.Wrap(serrors.ErrUnavailable, err, "could not send request")
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	b, err := io.ReadAll(resp.Body)
	if err != nil {
		return smssender.SendRes{}, errors.Wrap(err, "could not read response body")
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		// Twilio reports failures as a JSON object with a message and a
		// numeric error code.
		var apiErr struct {
			Code    int    `json:"code"`
			Message string `json:"message"`
		}
		if err := json.Unmarshal(b, &apiErr); err == nil && apiErr.Message != "" {
			return smssender.SendRes{},
				serrors.With(serrors.ErrUnavailable, "provider rejected message (code %d): %s", apiErr.Code, apiErr.Message)
		}

		return smssender.SendRes{},
			serrors.With(serrors.ErrUnavailable, "send failed: %s", strings.TrimSpace(string(b)))
	}

	// successful
	var sendResp struct {
		SID string `json:"sid"`
	}
	if err := json.Unmarshal(b, &sendResp); err != nil {
		return smssender.SendRes{}, errors.Wrap(err, "could not decode response")
	}

	return smssender.SendRes{ID: sendResp.SID}, nil
}

// Ensure Client conforms to the smssender.Client interface at compile time.
var _ smssender.Client = (*Client)(nil)
