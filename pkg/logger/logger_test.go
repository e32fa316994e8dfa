package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestReplace_RoutesNamedLoggers(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	Replace(zap.New(core))
	t.Cleanup(func() { Replace(zap.NewNop()) })

	Named("exchange.deribit").Debug("normify.deribit.normalize.rejected", zap.String("name", "BTC-X"))
	S().Infow("hello", "k", "v")

	entries := logs.All()
	assert.Len(t, entries, 2)
	assert.Equal(t, "exchange.deribit", entries[0].LoggerName)
	assert.Equal(t, "BTC-X", entries[0].ContextMap()["name"])
	assert.Equal(t, "hello", entries[1].Message)
}

func TestInit_LevelOverride(t *testing.T) {
	Init("normify-test", "prod", "error")
	t.Cleanup(func() { Replace(zap.NewNop()) })

	assert.False(t, L().Core().Enabled(zap.WarnLevel))
	assert.True(t, L().Core().Enabled(zap.ErrorLevel))
	Sync()
}
