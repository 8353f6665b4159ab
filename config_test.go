package main

import (
	"testing"

	"github.com/caarlos0/env/v11"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseConfig_Defaults(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{}})
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, ":8080", cfg.Addr())
	assert.Equal(t, "mailgun", cfg.MailProvider)
	assert.Equal(t, "smtp.gmail.com", cfg.SMTPHost)
	assert.Equal(t, "587", cfg.SMTPPort)
	assert.Equal(t, "http://127.0.0.1:8080/api/contact", cfg.ContactRelayURL())
}

func TestParseConfig_FromEnvironment(t *testing.T) {
	cfg, err := parseConfig(env.Options{Environment: map[string]string{
		"PORT":              ":9000",
		"GIN_MODE":          "release",
		"MAILGUN_API_KEY":   "key-123",
		"MAILGUN_DOMAIN":    "mg.example.com",
		"MAILGUN_FROM":      "site@example.com",
		"CONTACT_EMAIL":     "me@example.com",
		"CONTACT_RELAY_URL": "https://relay.example.com/api/contact",
	}})
	require.NoError(t, err)

	assert.Equal(t, ":9000", cfg.Addr())
	assert.Equal(t, "release", cfg.GinMode)
	assert.Equal(t, "key-123", cfg.MailgunAPIKey)
	assert.Equal(t, "mg.example.com", cfg.MailgunDomain)
	assert.Equal(t, "site@example.com", cfg.MailFrom)
	assert.Equal(t, "me@example.com", cfg.ContactEmail)
	assert.Equal(t, "https://relay.example.com/api/contact", cfg.ContactRelayURL())
}

func TestConfig_AddrAndRelayURL(t *testing.T) {
	tests := []struct {
		port     string
		addr     string
		relayURL string
	}{
		{"8080", ":8080", "http://127.0.0.1:8080/api/contact"},
		{":9000", ":9000", "http://127.0.0.1:9000/api/contact"},
		{"0.0.0.0:8080", "0.0.0.0:8080", "http://127.0.0.1:8080/api/contact"},
		{"localhost:3000", "localhost:3000", "http://localhost:3000/api/contact"},
		{"[::]:8080", "[::]:8080", "http://127.0.0.1:8080/api/contact"},
	}
	for _, tt := range tests {
		t.Run(tt.port, func(t *testing.T) {
			cfg := Config{Port: tt.port}
			assert.Equal(t, tt.addr, cfg.Addr())
			assert.Equal(t, tt.relayURL, cfg.ContactRelayURL())
		})
	}
}

func TestParseConfig_RejectsUnknownGinMode(t *testing.T) {
	_, err := parseConfig(env.Options{Environment: map[string]string{"GIN_MODE": "verbose"}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "verbose")
}
