package eventlog

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// ErrSerialization is returned when an event has no JSON encoding.
var ErrSerialization = errors.New("event is not serializable")

// Render encodes event as JSON indented by indent spaces, or compact JSON
// when indent is 0. json.RawMessage input is re-indented without decoding,
// so key order and number text are kept as received.
func Render(event any, indent int) (string, error) {
	if raw, ok := event.(json.RawMessage); ok {
		return renderRaw(raw, indent)
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if indent > 0 {
		enc.SetIndent("", strings.Repeat(" ", indent))
	}

	if err := enc.Encode(event); err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}

func renderRaw(raw json.RawMessage, indent int) (string, error) {
	var (
		buf bytes.Buffer
		err error
	)
	// Indent copies trailing whitespace through
	raw = bytes.TrimSpace(raw)
	if indent > 0 {
		err = json.Indent(&buf, raw, "", strings.Repeat(" ", indent))
	} else {
		err = json.Compact(&buf, raw)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSerialization, err)
	}

	return buf.String(), nil
}

// EncodeBody encodes message as a JSON string literal.
func EncodeBody(message string) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)

	if err := enc.Encode(message); err != nil {
		return "", fmt.Errorf("failed to encode response body: %w", err)
	}

	return strings.TrimSuffix(buf.String(), "\n"), nil
}
