package twiliosms_test

import (
	"context"
	"io"
	"net/http"
	"strings"
	"testing"

	"taxapp/pkg/serrors"
	"taxapp/pkg/smssender/twiliosms"

	"github.com/stretchr/testify/require"
)

// rtFunc allows using a function as an http.RoundTripper.
type rtFunc func(*http.Request) (*http.Response, error)

func (f rtFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func newTestClient(fn rtFunc) *twiliosms.Client {
	return twiliosms.New(&http.Client{Transport: fn}, "AC-test", "secret-token", "+15005550006")
}

func TestClient_Send_success(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "api.twilio.com", r.URL.Host)
		require.Equal(t, "/2010-04-01/Accounts/AC-test/Messages.json", r.URL.Path)
		require.Equal(t, "application/x-www-form-urlencoded", r.Header.Get("Content-Type"))

		user, pass, ok := r.BasicAuth()
		require.True(t, ok)
		require.Equal(t, "AC-test", user)
		require.Equal(t, "secret-token", pass)

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		form := string(body)
		require.Contains(t, form, "To=%2B919876543210")
		require.Contains(t, form, "From=%2B15005550006")
		require.Contains(t, form, "Body=Hello")

		return &http.Response{
			StatusCode: http.StatusCreated,
			Body:       io.NopCloser(strings.NewReader(`{"sid":"SM123abc","status":"queued"}`)),
		}, nil
	})

	res, err := c.Send(context.Background(), "+919876543210", "Hello Asha, your calculated tax is ₹72500. - TaxApp")
	require.NoError(t, err)
	require.Equal(t, "SM123abc", res.ID)
}

func TestClient_Send_invalidNumber(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadRequest,
			Body: io.NopCloser(strings.NewReader(
				`{"code":21211,"message":"The 'To' number is not a valid phone number.","status":400}`)),
		}, nil
	})

	_, err := c.Send(context.Background(), "12345", "hi")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "21211")
	require.Contains(t, err.Error(), "not a valid phone number")
}

func TestClient_Send_non2xxWithoutAPIError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return &http.Response{
			StatusCode: http.StatusBadGateway,
			Body:       io.NopCloser(strings.NewReader("upstream bad")),
		}, nil
	})

	_, err := c.Send(context.Background(), "+919876543210", "hi")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
	require.Contains(t, err.Error(), "upstream bad")
}

func TestClient_Send_transportError(t *testing.T) {
	c := newTestClient(func(r *http.Request) (*http.Response, error) {
		return nil, io.ErrUnexpectedEOF
	})

	_, err := c.Send(context.Background(), "+919876543210", "hi")
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestWithBaseURL(t *testing.T) {
	c := twiliosms.New(&http.Client{Transport: rtFunc(func(r *http.Request) (*http.Response, error) {
		require.Equal(t, "fake.local", r.URL.Host)

		return &http.Response{
			StatusCode: http.StatusCreated,
			Body:       io.NopCloser(strings.NewReader(`{"sid":"SMxyz"}`)),
		}, nil
	})}, "AC-test", "secret", "+10000000000", twiliosms.WithBaseURL("http://fake.local/"))

	res, err := c.Send(context.Background(), "+919876543210", "hi")
	require.NoError(t, err)
	require.Equal(t, "SMxyz", res.ID)
}
