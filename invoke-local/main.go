// Command invoke-local runs the S3 upload logger handler outside the Lambda
// runtime. The event is read from -event or stdin, log records go to stderr
// and the response is printed to stdout as JSON.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/google/uuid"

	"s3-upload-logger/internal/config"
	"s3-upload-logger/internal/eventlog"
	"s3-upload-logger/internal/logging"
)

const localFunctionARN = "arn:aws:lambda:local:000000000000:function:s3-upload-logger"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		fmt.Fprintf(os.Stderr, "invoke-local: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	flags := flag.NewFlagSet("invoke-local", flag.ContinueOnError)
	flags.SetOutput(stderr)
	eventPath := flags.String("event", "", "path to the event JSON file (reads stdin when empty)")
	requestID := flags.String("request-id", "", "request ID for the Lambda context (random UUID when empty)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("configuration validation failed: %w", err)
	}

	logger, err := logging.New(stderr, cfg)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}

	handler, err := eventlog.NewHandler(logger, cfg)
	if err != nil {
		return fmt.Errorf("failed to create handler: %w", err)
	}

	payload, err := readEvent(ctx, *eventPath, stdin)
	if err != nil {
		return err
	}

	id := *requestID
	if id == "" {
		id = uuid.NewString()
	}
	ctx = lambdacontext.NewContext(ctx, &lambdacontext.LambdaContext{
		AwsRequestID:       id,
		InvokedFunctionArn: localFunctionARN,
	})

	resp, err := handler.HandleRaw(ctx, payload)
	if err != nil {
		return fmt.Errorf("invocation %s failed: %w", id, err)
	}

	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(resp)
}

func readEvent(ctx context.Context, path string, stdin io.Reader) (json.RawMessage, error) {
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read event file: %w", err)
		}
		return data, nil
	}

	type result struct {
		data []byte
		err  error
	}
	done := make(chan result, 1)
	go func() {
		data, err := io.ReadAll(stdin)
		done <- result{data: data, err: err}
	}()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	case r := <-done:
		if r.err != nil {
			return nil, fmt.Errorf("failed to read event from stdin: %w", r.err)
		}
		return r.data, nil
	}
}
