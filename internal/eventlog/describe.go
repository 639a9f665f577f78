package eventlog

import (
	"context"
	"encoding/json"

	"github.com/aws/aws-lambda-go/events"
	"github.com/aws/aws-lambda-go/lambdacontext"
	"github.com/go-logr/logr"
)

const s3EventSource = "aws:s3"

// describe writes debug records about the invocation: the request ID and
// one record per S3 object when the event is an S3 notification.
func describe(ctx context.Context, logger logr.Logger, event any) {
	if lc, ok := lambdacontext.FromContext(ctx); ok {
		logger.Info("Invocation", "requestID", lc.AwsRequestID, "functionARN", lc.InvokedFunctionArn)
	}

	for _, record := range s3Records(event) {
		logger.Info("S3 object",
			"eventName", record.EventName,
			"bucket", record.S3.Bucket.Name,
			"key", record.S3.Object.Key,
			"size", record.S3.Object.Size,
		)
	}
}

func s3Records(event any) []events.S3EventRecord {
	var records []events.S3EventRecord

	switch e := event.(type) {
	case events.S3Event:
		records = e.Records
	case *events.S3Event:
		if e != nil {
			records = e.Records
		}
	case json.RawMessage:
		var s3Event events.S3Event
		if err := json.Unmarshal(e, &s3Event); err != nil {
			return nil
		}
		records = s3Event.Records
	}

	// SQS and SNS events also carry a Records array
	var filtered []events.S3EventRecord
	for _, record := range records {
		if record.EventSource == s3EventSource {
			filtered = append(filtered, record)
		}
	}
	return filtered
}
