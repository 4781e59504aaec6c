package context

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWithCalendarKey_TagsRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))

	ctx := WithLogger(WithRequestID(context.Background(), "req-1"), base)
	ctx = WithCalendarKey(ctx, "my-key")

	assert.Equal(t, "my-key", GetCalendarKeyFromContext(ctx))
	assert.Equal(t, "req-1", GetRequestIDFromContext(ctx))

	GetLoggerOrDefault(ctx, nil).Info("calendar operation")
	assert.Contains(t, buf.String(), "user_id=my-key")
}

func TestWithCalendarKey_WithoutLogger(t *testing.T) {
	fallback := slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil))

	ctx := WithCalendarKey(context.Background(), "my-key")

	assert.Equal(t, "my-key", GetCalendarKeyFromContext(ctx))
	assert.Nil(t, GetLogger(ctx))
	assert.Same(t, fallback, GetLoggerOrDefault(ctx, fallback))
	assert.Empty(t, GetRequestIDFromContext(ctx))
}
