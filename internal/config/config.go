package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Notification channel names accepted in Notifier.Channel.
const (
	ChannelJSON  = "json"
	ChannelEmail = "email"
	ChannelSMS   = "sms"
)

// Config represents the application configuration structure.
// It contains settings for the environment, HTTP server, the active
// notification channel and its provider credentials, and graceful shutdown
// behavior.
type Config struct {
	// Environment specifies the current running environment (development, production, etc.)
	Environment string `env:"ENVIRONMENT" env-default:"development" yaml:"environment"`

	// HTTP contains all HTTP server related configurations
	HTTP struct {
		// Addr is the address and port the HTTP server will listen on
		Addr string `env:"HTTP_ADDR" env-default:":8080" yaml:"addr"`
		// ReadTimeout is the maximum duration for reading the entire request, including the body
		ReadTimeout time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"1m" yaml:"readTimeout"`
		// ReadHeaderTimeout is the amount of time allowed to read request headers
		ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" env-default:"10s" yaml:"readHeaderTimeout"`
		// WriteTimeout is the maximum duration before timing out writes of the response
		WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"2m" yaml:"writeTimeout"`
		// IdleTimeout is the maximum amount of time to wait for the next request when keep-alives are enabled
		IdleTimeout time.Duration `env:"HTTP_IDLE_TIMEOUT" env-default:"2m" yaml:"idleTimeout"`
		// RequestTimeout is the maximum time allowed for processing a single request,
		// which bounds the whole calculate-render-dispatch sequence
		RequestTimeout time.Duration `env:"HTTP_REQUEST_TIMEOUT" env-default:"30s" yaml:"requestTimeout"`
		// MaxHeaderBytes controls the maximum number of bytes the server will read parsing the request header
		MaxHeaderBytes int `env:"HTTP_MAX_HEADER_BYTES" env-default:"0" yaml:"maxHeaderBytes"`
		// MetricsPath defines the URL path where metrics are exposed
		MetricsPath string `env:"HTTP_METRICS_PATH" env-default:"/metrics" yaml:"metricsPath"`
	} `yaml:"http"`

	// Notifier selects the active notification channel. The channel is a
	// deployment-time decision, not a per-request one.
	Notifier struct {
		// Channel is one of "json", "email" or "sms"
		Channel string `env:"NOTIFIER_CHANNEL" env-default:"json" yaml:"channel"`
	} `yaml:"notifier"`

	// Email configures the SMTP provider and the report email templates.
	// Only consulted when the email channel is active.
	Email struct {
		// Host is the SMTP server hostname
		Host string `env:"EMAIL_HOST" env-default:"localhost" yaml:"host"`
		// Port is the SMTP server port
		Port int `env:"EMAIL_PORT" env-default:"587" yaml:"port"`
		// Username authenticates against the SMTP server
		Username string `env:"EMAIL_USERNAME" env-default:"" yaml:"username"`
		// Password authenticates against the SMTP server
		Password string `env:"EMAIL_PASSWORD" env-default:"" yaml:"password"`
		// SenderAddress is the fixed address reports are mailed from
		SenderAddress string `env:"EMAIL_SENDER_ADDRESS" env-default:"reports@taxapp.example" yaml:"senderAddress"`
		// SubjectTemplate overrides the fixed subject line; empty keeps the default
		SubjectTemplate string `env:"EMAIL_SUBJECT_TEMPLATE" env-default:"" yaml:"subjectTemplate"`
		// BodyTemplate overrides the fixed plain-text body; empty keeps the default
		BodyTemplate string `env:"EMAIL_BODY_TEMPLATE" env-default:"" yaml:"bodyTemplate"`
	} `yaml:"email"`

	// SMS configures the Twilio provider and the text message template.
	// Only consulted when the sms channel is active.
	SMS struct {
		// AccountSID identifies the Twilio account
		AccountSID string `env:"SMS_ACCOUNT_SID" env-default:"" yaml:"accountSid"`
		// AuthToken is the Twilio API secret
		AuthToken string `env:"SMS_AUTH_TOKEN" env-default:"" yaml:"authToken"`
		// FromNumber is the provisioned sender number in E.164 format
		FromNumber string `env:"SMS_FROM_NUMBER" env-default:"" yaml:"fromNumber"`
		// Template overrides the fixed message template; empty keeps the default
		Template string `env:"SMS_TEMPLATE" env-default:"" yaml:"template"`
	} `yaml:"sms"`

	// Report configures the PDF renderer.
	Report struct {
		// CurrencyPrefix is printed before amounts in the PDF; empty keeps the default
		CurrencyPrefix string `env:"REPORT_CURRENCY_PREFIX" env-default:"" yaml:"currencyPrefix"`
	} `yaml:"report"`

	// GracefulShutdownTimeout is the maximum duration to wait for ongoing requests to complete during shutdown
	GracefulShutdownTimeout time.Duration `env:"GRACEFUL_SHUTDOWN_TIMEOUT" env-default:"10s" yaml:"gracefulShutdownTimeout"` //nolint: lll
}

// Load receives the path for yaml config file and returns a filled Config struct.
func Load(configPath string) (*Config, error) {
	var cfg Config
	err := cleanenv.ReadConfig(configPath, &cfg)
	if err != nil {
		return nil, fmt.Errorf("could not read config: %w", err)
	}

	return &cfg, nil
}
