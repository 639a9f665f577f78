package main

import (
	"fmt"
	"os"

	"github.com/aws/aws-lambda-go/lambda"

	"s3-upload-logger/internal/config"
	"s3-upload-logger/internal/eventlog"
	"s3-upload-logger/internal/logging"
)

// setup runs once per cold start
func setup() (*eventlog.Handler, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	// stdout is shipped to CloudWatch Logs by the Lambda runtime
	logger, err := logging.New(os.Stdout, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	handler, err := eventlog.NewHandler(logger, cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to create handler: %w", err)
	}

	logger.V(1).Info("S3 upload logger initialized",
		"indent", cfg.Indent,
		"logEncoding", cfg.LogEncoding,
	)

	return handler, nil
}

func main() {
	handler, err := setup()
	if err != nil {
		fmt.Fprintf(os.Stderr, "cold start failed: %v\n", err)
		os.Exit(1)
	}

	lambda.Start(handler.HandleRaw)
}
