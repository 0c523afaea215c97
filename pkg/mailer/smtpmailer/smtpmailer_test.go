package smtpmailer_test

import (
	"bytes"
	"testing"

	"taxapp/pkg/mailer"
	"taxapp/pkg/mailer/smtpmailer"
	"taxapp/pkg/serrors"

	"github.com/stretchr/testify/require"
)

func testMessage() mailer.Message {
	return mailer.Message{
		To:      "asha@example.com",
		Subject: "Your Income Tax Calculation Report",
		Body:    "Hello,\n\nPlease find attached your tax calculation report.\n\nRegards,\nTax App",
		Attachment: mailer.Attachment{
			Filename: "TaxReport.pdf",
			Content:  []byte("%PDF-1.3 fake"),
		},
	}
}

func TestBuildMessage_MIMEContainsAttachment(t *testing.T) {
	m, id, err := smtpmailer.BuildMessage("reports@taxapp.example", testMessage())
	require.NoError(t, err)
	require.NotEmpty(t, id)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)

	mime := buf.String()
	require.Contains(t, mime, "To: asha@example.com")
	require.Contains(t, mime, "Subject: Your Income Tax Calculation Report")
	require.Contains(t, mime, `filename="TaxReport.pdf"`)
	require.Contains(t, mime, id, "generated message ID should appear in the headers")
}

func TestBuildMessage_NoAttachment(t *testing.T) {
	msg := testMessage()
	msg.Attachment = mailer.Attachment{}

	m, _, err := smtpmailer.BuildMessage("reports@taxapp.example", msg)
	require.NoError(t, err)

	var buf bytes.Buffer
	_, err = m.WriteTo(&buf)
	require.NoError(t, err)
	require.NotContains(t, buf.String(), "Content-Disposition: attachment")
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	msg := testMessage()
	msg.To = "not-an-address"

	_, _, err := smtpmailer.BuildMessage("reports@taxapp.example", msg)
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestBuildMessage_InvalidSender(t *testing.T) {
	_, _, err := smtpmailer.BuildMessage("broken sender", testMessage())
	require.Error(t, err)
	require.ErrorIs(t, err, serrors.ErrUnavailable)
}

func TestBuildMessage_FreshIDPerMessage(t *testing.T) {
	_, id1, err := smtpmailer.BuildMessage("reports@taxapp.example", testMessage())
	require.NoError(t, err)
	_, id2, err := smtpmailer.BuildMessage("reports@taxapp.example", testMessage())
	require.NoError(t, err)
	require.NotEqual(t, id1, id2)
}
