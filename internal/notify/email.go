package notify

import (
	"context"
	"fmt"

	"taxapp/internal/report"
	"taxapp/pkg/domain"
	"taxapp/pkg/logger"
	"taxapp/pkg/mailer"

	"go.uber.org/zap"
)

// Default subject and body for the report email, matching the text the
// service has always sent.
const (
	DefaultEmailSubject = "Your Income Tax Calculation Report"
	DefaultEmailBody    = "Hello,\n\nPlease find attached your tax calculation report.\n\nRegards,\nTax App"
)

// EmailOptions configure the email strategy. Zero values fall back to the
// defaults above.
type EmailOptions struct {
	// Subject is the fixed subject line.
	Subject string
	// Body is the fixed plain-text body accompanying the attachment.
	Body string
}

// emailDispatcher renders the PDF report and mails it as an attachment.
type emailDispatcher struct {
	renderer report.Renderer
	sender   mailer.Sender
	opts     EmailOptions
}

// NewEmail creates the email dispatcher from a report renderer and a mail
// sender collaborator.
func NewEmail(renderer report.Renderer, sender mailer.Sender, opts EmailOptions) Dispatcher {
	if opts.Subject == "" {
		opts.Subject = DefaultEmailSubject
	}
	if opts.Body == "" {
		opts.Body = DefaultEmailBody
	}

	return &emailDispatcher{renderer: renderer, sender: sender, opts: opts}
}

func (d *emailDispatcher) Channel() domain.Channel { return domain.ChannelEmail }

// Dispatch renders the report and hands it to the mail provider. Render and
// delivery failures are captured in the outcome, never returned.
func (d *emailDispatcher) Dispatch(ctx context.Context, result domain.TaxResult) domain.NotificationOutcome {
	outcome := domain.NotificationOutcome{Channel: domain.ChannelEmail}

	pdf, err := d.renderer.Render(result)
	if err != nil {
		logger.Error(ctx, "could not render tax report", zap.Error(err))
		outcome.Status = domain.OutcomeFailure
		outcome.Err = fmt.Errorf("could not render tax report: %w", err)

		return outcome
	}

	res, err := d.sender.Send(ctx, mailer.Message{
		To:      result.Email,
		Subject: d.opts.Subject,
		Body:    d.opts.Body,
		Attachment: mailer.Attachment{
			Filename: report.Filename,
			Content:  pdf,
		},
	})
	if err != nil {
		logger.Error(ctx, "could not send report email", zap.Error(err))
		outcome.Status = domain.OutcomeFailure
		outcome.Err = fmt.Errorf("could not send report email: %w", err)

		return outcome
	}

	outcome.Status = domain.OutcomeSuccess
	outcome.MessageID = res.ID
	outcome.Detail = fmt.Sprintf("Report sent to %s", result.Email)

	return outcome
}
