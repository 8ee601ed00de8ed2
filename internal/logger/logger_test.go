package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func captureOutput(t *testing.T) *bytes.Buffer {
	t.Helper()
	buf := &bytes.Buffer{}
	std := logrus.StandardLogger()
	prevOut, prevFormatter, prevLevel := std.Out, std.Formatter, std.Level
	std.SetOutput(buf)
	std.SetFormatter(&logrus.JSONFormatter{})
	std.SetLevel(logrus.DebugLevel)
	t.Cleanup(func() {
		std.SetOutput(prevOut)
		std.SetFormatter(prevFormatter)
		std.SetLevel(prevLevel)
	})
	return buf
}

func decodeLine(t *testing.T, buf *bytes.Buffer) map[string]interface{} {
	t.Helper()
	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestWithContext_UserOwnerAndRequestID(t *testing.T) {
	buf := captureOutput(t)

	ctx := ContextWithRequestID(context.Background(), "req-1")
	ctx = ContextWithUser(ctx, "ana@example.com", "owner-1")
	WithContext(ctx).Infof("listed %d guests", 3)

	entry := decodeLine(t, buf)
	assert.Equal(t, "ana@example.com", entry["user"])
	assert.Equal(t, "owner-1", entry["owner"])
	assert.Equal(t, "req-1", entry["request_id"])
	assert.Equal(t, "listed 3 guests", entry["msg"])
	assert.Equal(t, "req-1", RequestIDFromContext(ctx))
}

func TestWithContext_UnknownUser(t *testing.T) {
	buf := captureOutput(t)

	WithContext(context.Background()).Warnf("no session")

	entry := decodeLine(t, buf)
	assert.Equal(t, "unknown", entry["user"])
	_, hasOwner := entry["owner"]
	assert.False(t, hasOwner)
}

func TestWithErrorAndFields(t *testing.T) {
	buf := captureOutput(t)

	New().WithFields(map[string]interface{}{"op": "delete table"}).
		WithError(errors.New("boom")).
		Errorf("store failure")

	entry := decodeLine(t, buf)
	assert.Equal(t, "delete table", entry["op"])
	assert.Equal(t, "boom", entry["error"])
	assert.Equal(t, "error", entry["level"])
}
