package obs

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestTimeLogsFailure(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core))

	func() (err error) {
		defer Time(ctx, "geocode")(&err)
		return errors.New("boom")
	}()

	entries := logs.FilterMessage("op failed").All()
	if assert.Len(t, entries, 1) {
		assert.Equal(t, "geocode", entries[0].ContextMap()["op"])
		assert.Equal(t, "boom", entries[0].ContextMap()["error"])
	}
}

func TestLoggerFallsBackToNop(t *testing.T) {
	assert.NotNil(t, Logger(context.Background()))
	assert.Equal(t, "", RequestID(context.Background()))
	assert.Equal(t, "abc", RequestID(WithRequestID(context.Background(), "abc")))
}
