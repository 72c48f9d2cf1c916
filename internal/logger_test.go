package internal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		name      string
		env       string
		level     string
		wantDebug bool
	}{
		{"development debug", "development", "debug", true},
		{"production info", "production", "info", false},
		{"bad level falls back to info", "development", "chatty", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			l, err := NewLogger(tc.env, tc.level)
			require.NoError(t, err)
			assert.Equal(t, tc.wantDebug, l.s.Desugar().Core().Enabled(zapcore.DebugLevel))
		})
	}
}

func TestZapLogger_WithCarriesFields(t *testing.T) {
	core, logs := observer.New(zapcore.InfoLevel)
	l := NewZapLogger(zap.New(core).Sugar())

	l.With("session_id", "s1").Infof("appended %d entries", 2)

	require.Equal(t, 1, logs.Len())
	entry := logs.All()[0]
	assert.Equal(t, "appended 2 entries", entry.Message)
	assert.Equal(t, "s1", entry.ContextMap()["session_id"])
}
