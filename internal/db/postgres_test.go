package db

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/jackc/pgx/v5/tracelog"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTraceLevel(t *testing.T) {
	global := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(global)

	zerolog.SetGlobalLevel(zerolog.TraceLevel)
	assert.Equal(t, tracelog.LogLevelDebug, traceLevel(zerolog.Nop().Level(zerolog.DebugLevel)))
	assert.Equal(t, tracelog.LogLevelError, traceLevel(zerolog.Nop().Level(zerolog.InfoLevel)))

	zerolog.SetGlobalLevel(zerolog.WarnLevel)
	assert.Equal(t, tracelog.LogLevelError, traceLevel(zerolog.Nop().Level(zerolog.DebugLevel)))
}

func TestQueryLoggerMapsLevels(t *testing.T) {
	global := zerolog.GlobalLevel()
	defer zerolog.SetGlobalLevel(global)
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	var buf bytes.Buffer
	lgr := zerolog.New(&buf).Level(zerolog.DebugLevel)

	queryLogger(lgr).Log(context.Background(), tracelog.LogLevelError, "Query", map[string]any{"sql": "SELECT 1"})

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "error", entry["level"])
	assert.Equal(t, "Query", entry["message"])
	assert.Equal(t, "SELECT 1", entry["sql"])
	assert.Equal(t, "pgx", entry["component"])
}
