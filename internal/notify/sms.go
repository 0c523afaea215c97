package notify

import (
	"context"
	"fmt"
	"strings"
	"text/template"

	"taxapp/pkg/domain"
	"taxapp/pkg/logger"
	"taxapp/pkg/smssender"

	"go.uber.org/zap"
)

// DefaultSMSTemplate is the fixed-template text message. It receives the
// taxpayer name and the formatted tax amount.
const DefaultSMSTemplate = "Hello {{.Name}}, your calculated tax is ₹{{.Tax}}. - TaxApp"

// smsDispatcher formats the text message and hands it to the SMS provider.
// The mobile number is passed through as received; malformed numbers surface
// as provider failures.
type smsDispatcher struct {
	client smssender.Client
	tmpl   *template.Template
}

// NewSMS creates the SMS dispatcher. tmplText is the message template with
// {{.Name}} and {{.Tax}} placeholders; empty means DefaultSMSTemplate.
func NewSMS(client smssender.Client, tmplText string) (Dispatcher, error) {
	if tmplText == "" {
		tmplText = DefaultSMSTemplate
	}
	tmpl, err := template.New("sms").Parse(tmplText)
	if err != nil {
		return nil, fmt.Errorf("could not parse SMS template: %w", err)
	}

	return &smsDispatcher{client: client, tmpl: tmpl}, nil
}

func (d *smsDispatcher) Channel() domain.Channel { return domain.ChannelSMS }

func (d *smsDispatcher) Dispatch(ctx context.Context, result domain.TaxResult) domain.NotificationOutcome {
	outcome := domain.NotificationOutcome{Channel: domain.ChannelSMS}

	var text strings.Builder
	err := d.tmpl.Execute(&text, struct {
		Name string
		Tax  string
	}{
		Name: result.Name,
		Tax:  fmt.Sprintf("%.2f", result.Tax),
	})
	if err != nil {
		logger.Error(ctx, "could not execute SMS template", zap.Error(err))
		outcome.Status = domain.OutcomeFailure
		outcome.Err = fmt.Errorf("could not execute SMS template: %w", err)

		return outcome
	}

	res, err := d.client.Send(ctx, result.Mobile, text.String())
	if err != nil {
		logger.Error(ctx, "could not send SMS", zap.Error(err))
		outcome.Status = domain.OutcomeFailure
		outcome.Err = fmt.Errorf("could not send SMS: %w", err)

		return outcome
	}

	outcome.Status = domain.OutcomeSuccess
	outcome.MessageID = res.ID
	outcome.Detail = fmt.Sprintf("SMS sent to %s", result.Mobile)

	return outcome
}
