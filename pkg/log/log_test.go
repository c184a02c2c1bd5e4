package log

import (
	"bytes"
	"context"
	"encoding/json"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// syncBuffer guards bytes.Buffer since the diode flushes from its own goroutine.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestNewContextWithWriter_JSONForNonTerminal(t *testing.T) {
	var out syncBuffer
	ctx, flush := NewContextWithWriter(context.Background(), false, &out)

	defer flush()

	FromCtx(ctx).Debug().Msg("hidden")
	FromCtx(ctx).Info().Str("city", "Seattle").Msg("weather fetched")
	require.Eventually(t, func() bool {
		return strings.Contains(out.String(), "weather fetched")
	}, time.Second, 5*time.Millisecond)

	lines := bytes.Split(bytes.TrimSpace([]byte(out.String())), []byte("\n"))
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(lines[0], &entry))
	assert.Equal(t, "info", entry["level"])
	assert.Equal(t, "Seattle", entry["city"])
	assert.Equal(t, "weather fetched", entry["message"])
}

func TestNewContextWithWriter_DebugLevel(t *testing.T) {
	var out syncBuffer
	_, flush := NewContextWithWriter(context.Background(), true, &out)
	defer flush()

	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestWithLogger(t *testing.T) {
	var out bytes.Buffer
	ctx := WithLogger(context.Background(), zerolog.New(&out).With().Str("request_id", "r1").Logger())

	FromCtx(ctx).Info().Msg("hi")
	assert.Contains(t, out.String(), `"request_id":"r1"`)
}

func TestGooseLogger_TrimsNewline(t *testing.T) {
	var out bytes.Buffer
	ctx := WithLogger(context.Background(), zerolog.New(&out).Level(zerolog.DebugLevel))
	zerolog.SetGlobalLevel(zerolog.DebugLevel)

	NewGooseLogger(ctx).Printf("OK   %s\n", "00001_init.sql")

	assert.Contains(t, out.String(), `"message":"OK   00001_init.sql"`)
	assert.Contains(t, out.String(), `"component":"goose"`)
}
