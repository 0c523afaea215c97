package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"taxapp/internal/api"
	"taxapp/internal/config"
	"taxapp/internal/notify"
	"taxapp/internal/report"
	"taxapp/pkg/logger"
	"taxapp/pkg/mailer/smtpmailer"
	"taxapp/pkg/smssender/twiliosms"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// buildDispatcher constructs the notification dispatcher for the channel
// named in the configuration. The channel is fixed for the lifetime of the
// process.
func buildDispatcher(cfg *config.Config) (notify.Dispatcher, error) {
	switch cfg.Notifier.Channel {
	case config.ChannelJSON:
		return notify.NewJSON(), nil

	case config.ChannelEmail:
		sender, err := smtpmailer.New(smtpmailer.Options{
			Host:     cfg.Email.Host,
			Port:     cfg.Email.Port,
			Username: cfg.Email.Username,
			Password: cfg.Email.Password,
			From:     cfg.Email.SenderAddress,
		})
		if err != nil {
			return nil, fmt.Errorf("could not create smtp mailer: %w", err)
		}
		renderer := report.New(report.Options{CurrencyPrefix: cfg.Report.CurrencyPrefix})

		return notify.NewEmail(renderer, sender, notify.EmailOptions{
			Subject: cfg.Email.SubjectTemplate,
			Body:    cfg.Email.BodyTemplate,
		}), nil

	case config.ChannelSMS:
		client := twiliosms.New(http.DefaultClient, cfg.SMS.AccountSID, cfg.SMS.AuthToken, cfg.SMS.FromNumber)

		return notify.NewSMS(client, cfg.SMS.Template)

	default:
		return nil, fmt.Errorf("unknown notifier channel %q", cfg.Notifier.Channel)
	}
}

func setupServer(ctx context.Context, cfg *config.Config) func(ctx context.Context) {
	dispatcher, err := buildDispatcher(cfg)
	if err != nil {
		logger.Fatal(ctx, "could not create notification dispatcher", zap.Error(err))
	}

	server, err := api.NewServer(api.Deps{Dispatcher: dispatcher}, api.NewOptions(cfg))
	if err != nil {
		logger.Fatal(ctx, "could not create webserver", zap.Error(err))
	}

	go func() {
		logger.Info(ctx, "starting webserver...",
			zap.String("addr", cfg.HTTP.Addr),
			zap.String("channel", cfg.Notifier.Channel))
		if err := server.ListenAndServe(); err != nil {
			if !errors.Is(err, http.ErrServerClosed) {
				logger.Error(ctx, "could not start webserver", zap.Error(err))
			}
		}
	}()

	return func(ctx context.Context) {
		logger.Info(ctx, "stopping webserver...")
		if err := server.Shutdown(ctx); err != nil {
			logger.Error(ctx, "could not stop webserver", zap.Error(err))
		}
	}
}

func serveCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Starts the tax calculation API server",
		Run: func(cmd *cobra.Command, args []string) {
			ctx, _ := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

			stopWebserver := setupServer(ctx, cfg)

			// wait for interrupt
			<-ctx.Done()
			shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.GracefulShutdownTimeout)
			defer cancel()

			stopWebserver(shutdownCtx)
		},
	}

	return cmd
}
