package logging

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"aoc2023/internal/config"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestParseLevel(t *testing.T) {
	tests := map[string]zapcore.Level{
		"debug":   zapcore.DebugLevel,
		"INFO":    zapcore.InfoLevel,
		"":        zapcore.InfoLevel,
		"warn":    zapcore.WarnLevel,
		"warning": zapcore.WarnLevel,
		" error ": zapcore.ErrorLevel,
	}
	for in, want := range tests {
		got, err := ParseLevel(in)
		require.NoError(t, err, in)
		assert.Equal(t, want, got, in)
	}

	_, err := ParseLevel("trace")
	assert.Error(t, err)
}

func TestBuild_JSONFiltersByLevel(t *testing.T) {
	var buf bytes.Buffer
	log, err := Build(config.LoggingConfig{Level: "warn", Format: "json"}, zapcore.AddSync(&buf))
	require.NoError(t, err)

	For(log, CategoryGrid).Info("dropped")
	For(log, CategoryGrid).Warn("kept", zap.Int("row", 3))
	require.NoError(t, log.Sync())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "kept", entry["msg"])
	assert.Equal(t, "grid", entry["logger"])
	assert.Equal(t, float64(3), entry["row"])
}

func TestBuild_RejectsBadConfig(t *testing.T) {
	var buf bytes.Buffer
	_, err := Build(config.LoggingConfig{Level: "loud"}, zapcore.AddSync(&buf))
	assert.Error(t, err)

	_, err = Build(config.LoggingConfig{Level: "info", Format: "xml"}, zapcore.AddSync(&buf))
	assert.Error(t, err)
}

func TestFor_NilBaseIsNop(t *testing.T) {
	log := For(nil, CategoryKernel)
	require.NotNil(t, log)
	log.Info("goes nowhere")
}

func TestWithRun_TagsEntries(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	log, id := WithRun(zap.New(core))

	_, err := uuid.Parse(id)
	require.NoError(t, err)

	log.Info("solving")
	require.Equal(t, 1, logs.Len())
	assert.Equal(t, id, logs.All()[0].ContextMap()["run_id"])
}
