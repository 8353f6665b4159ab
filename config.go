package main

import (
	"fmt"
	"net"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/gin-gonic/gin"
)

// Config holds everything read from the environment at startup.
// A .env file next to the binary is loaded first by godotenv/autoload.
type Config struct {
	Port    string `env:"PORT" envDefault:"8080"`
	GinMode string `env:"GIN_MODE" envDefault:"debug"`

	// Mail provider selection: "mailgun" or "smtp".
	MailProvider string `env:"MAIL_PROVIDER" envDefault:"mailgun"`

	MailgunAPIKey  string `env:"MAILGUN_API_KEY"`
	MailgunDomain  string `env:"MAILGUN_DOMAIN"`
	MailgunAPIBase string `env:"MAILGUN_API_BASE"`

	MailFrom     string `env:"MAILGUN_FROM"`
	ContactEmail string `env:"CONTACT_EMAIL"`

	SMTPHost string `env:"SMTP_HOST" envDefault:"smtp.gmail.com"`
	SMTPPort string `env:"SMTP_PORT" envDefault:"587"`
	SMTPUser string `env:"SMTP_USER"`
	SMTPPass string `env:"SMTP_PASS"`

	// RelayURL is where the contact form posts submissions.
	// Empty means this server's own /api/contact.
	RelayURL string `env:"CONTACT_RELAY_URL"`
}

// LoadConfig parses the process environment into a Config.
func LoadConfig() (Config, error) {
	return parseConfig(env.Options{})
}

func parseConfig(opts env.Options) (Config, error) {
	var cfg Config
	if err := env.ParseWithOptions(&cfg, opts); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	switch cfg.GinMode {
	case gin.DebugMode, gin.ReleaseMode, gin.TestMode:
	default:
		return Config{}, fmt.Errorf("GIN_MODE %q: want debug, release or test", cfg.GinMode)
	}
	return cfg, nil
}

// Addr is the listen address for the HTTP server. PORT may be a bare port
// ("8080", ":8080") or a host:port pair ("0.0.0.0:8080").
func (c Config) Addr() string {
	if host, port, err := net.SplitHostPort(c.Port); err == nil {
		return net.JoinHostPort(host, port)
	}
	return ":" + strings.TrimPrefix(c.Port, ":")
}

// ContactRelayURL returns the relay endpoint the contact form talks to.
func (c Config) ContactRelayURL() string {
	if c.RelayURL != "" {
		return c.RelayURL
	}
	host, port, err := net.SplitHostPort(c.Addr())
	if err != nil {
		return "http://127.0.0.1" + c.Addr() + "/api/contact"
	}
	switch host {
	case "", "0.0.0.0", "::":
		host = "127.0.0.1"
	}
	return "http://" + net.JoinHostPort(host, port) + "/api/contact"
}
