package ingest

import (
	"testing"

	"github.com/aws/aws-lambda-go/events"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func s3EventBody(eventName, key string) string {
	return `{"Records":[{"eventVersion":"2.1","eventSource":"aws:s3","awsRegion":"us-east-1",` +
		`"eventTime":"2025-01-15T10:30:00.000Z","eventName":"` + eventName + `",` +
		`"s3":{"s3SchemaVersion":"1.0","configurationId":"doc-events",` +
		`"bucket":{"name":"renalbridge-docs","arn":"arn:aws:s3:::renalbridge-docs"},` +
		`"object":{"key":"` + key + `","size":204800,"eTag":"abc","sequencer":"005"}}}]}`
}

func TestDecodeSQSMessageObjectCreated(t *testing.T) {
	msg := events.SQSMessage{
		MessageId: "m-1",
		Body:      s3EventBody("ObjectCreated:Put", "patients/P1/documents/current_labs/g42/lab+results.pdf"),
	}

	records, err := DecodeSQSMessage(msg)
	require.NoError(t, err)
	require.Len(t, records, 1)

	rec := records[0]
	assert.Equal(t, "m-1", rec.MessageID)
	assert.Equal(t, "renalbridge-docs", rec.Bucket)
	assert.Equal(t, "patients/P1/documents/current_labs/g42/lab results.pdf", rec.Key)
	assert.Equal(t, "ObjectCreated:Put", rec.EventName)
	assert.Equal(t, int64(204800), rec.Size)
	assert.False(t, rec.EventTime.IsZero())
}

func TestDecodeSQSMessageSkipsTestEvent(t *testing.T) {
	msg := events.SQSMessage{
		MessageId: "m-2",
		Body:      `{"Service":"Amazon S3","Event":"s3:TestEvent","Time":"2025-01-15T10:00:00.000Z","Bucket":"renalbridge-docs"}`,
	}

	records, err := DecodeSQSMessage(msg)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeSQSMessageSkipsNonCreateEvents(t *testing.T) {
	msg := events.SQSMessage{
		MessageId: "m-3",
		Body:      s3EventBody("ObjectRemoved:Delete", "patients/P1/documents/current_labs/g42/labs.pdf"),
	}

	records, err := DecodeSQSMessage(msg)
	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestDecodeSQSMessageMalformed(t *testing.T) {
	_, err := DecodeSQSMessage(events.SQSMessage{MessageId: "m-4", Body: `{"Records": [`})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "m-4")
}

func TestDecodeSQSMessageBadKeyEncoding(t *testing.T) {
	msg := events.SQSMessage{
		MessageId: "m-5",
		Body:      s3EventBody("ObjectCreated:Put", "patients/P1/documents/current_labs/g42/bad%zzname.pdf"),
	}

	_, err := DecodeSQSMessage(msg)
	require.Error(t, err)
}

func TestDecodeObjectKey(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"patients/P1/documents/current_labs/g1/labs.pdf", "patients/P1/documents/current_labs/g1/labs.pdf"},
		{"patients/P1/documents/current_labs/g1/lab+results.pdf", "patients/P1/documents/current_labs/g1/lab results.pdf"},
		{"patients/P1/documents/current_labs/g1/report%2B1.pdf", "patients/P1/documents/current_labs/g1/report+1.pdf"},
		{"patients/P1/documents/current_labs/g1/r%C3%A9sultats.pdf", "patients/P1/documents/current_labs/g1/résultats.pdf"},
	}
	for _, tt := range tests {
		got, err := DecodeObjectKey(tt.raw)
		require.NoError(t, err, tt.raw)
		assert.Equal(t, tt.want, got)
	}
}
