package ingest

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/aws/aws-lambda-go/events"
)

// ObjectCreated is one decoded storage notification: a new object landed in
// the documents bucket.
type ObjectCreated struct {
	// MessageID ties the record back to the queue message it rode in on,
	// for partial-batch retry reporting.
	MessageID string
	Bucket    string
	// Key is URL-decoded; the raw notification percent-encodes it.
	Key       string
	EventName string
	EventTime time.Time
	Size      int64
}

// DecodeSQSMessage parses one queue message body as an object-created
// notification batch. Test events and non-create events decode to nothing;
// a malformed body is an error the handler reports for redelivery.
func DecodeSQSMessage(msg events.SQSMessage) ([]ObjectCreated, error) {
	var probe struct {
		Event string `json:"Event"`
	}
	if err := json.Unmarshal([]byte(msg.Body), &probe); err != nil {
		return nil, fmt.Errorf("decode notification %s: %w", msg.MessageId, err)
	}
	if probe.Event == "s3:TestEvent" {
		return nil, nil
	}

	var s3ev events.S3Event
	if err := json.Unmarshal([]byte(msg.Body), &s3ev); err != nil {
		return nil, fmt.Errorf("decode notification %s: %w", msg.MessageId, err)
	}

	var out []ObjectCreated
	for _, rec := range s3ev.Records {
		if !strings.HasPrefix(rec.EventName, "ObjectCreated") {
			continue
		}
		key, err := DecodeObjectKey(rec.S3.Object.Key)
		if err != nil {
			return nil, fmt.Errorf("decode object key in %s: %w", msg.MessageId, err)
		}
		out = append(out, ObjectCreated{
			MessageID: msg.MessageId,
			Bucket:    rec.S3.Bucket.Name,
			Key:       key,
			EventName: rec.EventName,
			EventTime: rec.EventTime,
			Size:      rec.S3.Object.Size,
		})
	}
	return out, nil
}

// DecodeObjectKey undoes the notification's URL encoding ('+' is a space).
func DecodeObjectKey(raw string) (string, error) {
	key, err := url.QueryUnescape(raw)
	if err != nil {
		return "", fmt.Errorf("object key %q: %w", raw, err)
	}
	return key, nil
}
