package logger

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestLogger_DefaultIsNop(t *testing.T) {
	require.NotNil(t, Logger)
	assert.NotPanics(t, func() { Logger.Infow("ignored", "k", "v") })
}

func TestReplace_RestoresPrevious(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	prev := Logger

	restore := Replace(zap.New(core).Sugar())
	Logger.Debugw("emitted", "class", "AccessorsKt")
	restore()

	assert.Same(t, prev, Logger)
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "emitted", logs.All()[0].Message)
	assert.Equal(t, "AccessorsKt", logs.All()[0].ContextMap()["class"])
}
