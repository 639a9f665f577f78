package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

const (
	DefaultEventLabel      = "Received event:"
	DefaultResponseMessage = "S3 Upload Triggered Lambda Executed"
	DefaultIndent          = 2
	MaxIndent              = 8

	LogLevelInfo  = "info"
	LogLevelDebug = "debug"

	LogEncodingConsole = "console"
	LogEncodingJSON    = "json"
)

// Config holds the function settings read from environment variables.
// The zero-env defaults reproduce the fixed log-and-respond behavior.
type Config struct {
	// Handler
	EventLabel      string
	ResponseMessage string
	Indent          int

	// Logging
	LogLevel    string
	LogEncoding string
}

// LoadConfig loads configuration from environment variables
func LoadConfig() (*Config, error) {
	indent, err := strconv.Atoi(getEnvOrDefault("EVENT_INDENT", strconv.Itoa(DefaultIndent)))
	if err != nil {
		return nil, fmt.Errorf("invalid EVENT_INDENT: %w", err)
	}

	return &Config{
		EventLabel:      getEnvOrDefault("EVENT_LABEL", DefaultEventLabel),
		ResponseMessage: getEnvOrDefault("RESPONSE_MESSAGE", DefaultResponseMessage),
		Indent:          indent,
		LogLevel:        strings.ToLower(getEnvOrDefault("LOG_LEVEL", LogLevelInfo)),
		LogEncoding:     strings.ToLower(getEnvOrDefault("LOG_ENCODING", LogEncodingConsole)),
	}, nil
}

// Validate checks that every setting is usable
func (c *Config) Validate() error {
	if strings.TrimSpace(c.EventLabel) == "" {
		return fmt.Errorf("EVENT_LABEL must not be blank")
	}

	if c.Indent < 0 || c.Indent > MaxIndent {
		return fmt.Errorf("EVENT_INDENT must be between 0 and %d, got %d", MaxIndent, c.Indent)
	}

	switch c.LogLevel {
	case LogLevelInfo, LogLevelDebug:
	default:
		return fmt.Errorf("LOG_LEVEL must be %q or %q, got %q", LogLevelInfo, LogLevelDebug, c.LogLevel)
	}

	switch c.LogEncoding {
	case LogEncodingConsole, LogEncodingJSON:
	default:
		return fmt.Errorf("LOG_ENCODING must be %q or %q, got %q", LogEncodingConsole, LogEncodingJSON, c.LogEncoding)
	}

	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
