package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{"EVENT_LABEL", "RESPONSE_MESSAGE", "EVENT_INDENT", "LOG_LEVEL", "LOG_ENCODING"} {
		t.Setenv(key, "")
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, &Config{
		EventLabel:      "Received event:",
		ResponseMessage: "S3 Upload Triggered Lambda Executed",
		Indent:          2,
		LogLevel:        LogLevelInfo,
		LogEncoding:     LogEncodingConsole,
	}, cfg)
}

func TestLoadConfigOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENT_LABEL", "Event received:")
	t.Setenv("RESPONSE_MESSAGE", "Hello from Lambda!")
	t.Setenv("EVENT_INDENT", "0")
	t.Setenv("LOG_LEVEL", "DEBUG")
	t.Setenv("LOG_ENCODING", "json")

	cfg, err := LoadConfig()
	require.NoError(t, err)
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Event received:", cfg.EventLabel)
	assert.Equal(t, "Hello from Lambda!", cfg.ResponseMessage)
	assert.Equal(t, 0, cfg.Indent)
	assert.Equal(t, LogLevelDebug, cfg.LogLevel)
	assert.Equal(t, LogEncodingJSON, cfg.LogEncoding)
}

func TestLoadConfigRejectsNonNumericIndent(t *testing.T) {
	clearEnv(t)
	t.Setenv("EVENT_INDENT", "two")

	_, err := LoadConfig()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid EVENT_INDENT")
}

func TestValidate(t *testing.T) {
	valid := func() *Config {
		return &Config{
			EventLabel:      DefaultEventLabel,
			ResponseMessage: DefaultResponseMessage,
			Indent:          DefaultIndent,
			LogLevel:        LogLevelInfo,
			LogEncoding:     LogEncodingConsole,
		}
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{name: "defaults", mutate: func(*Config) {}},
		{name: "empty response message is allowed", mutate: func(c *Config) { c.ResponseMessage = "" }},
		{name: "blank label", mutate: func(c *Config) { c.EventLabel = "  " }, wantErr: "EVENT_LABEL"},
		{name: "negative indent", mutate: func(c *Config) { c.Indent = -1 }, wantErr: "EVENT_INDENT"},
		{name: "indent too wide", mutate: func(c *Config) { c.Indent = MaxIndent + 1 }, wantErr: "EVENT_INDENT"},
		{name: "unknown level", mutate: func(c *Config) { c.LogLevel = "trace" }, wantErr: "LOG_LEVEL"},
		{name: "unknown encoding", mutate: func(c *Config) { c.LogEncoding = "logfmt" }, wantErr: "LOG_ENCODING"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
