package logging_test

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/topeigen/eigen"
	"github.com/katalvlaran/topeigen/internal/logging"
	"github.com/katalvlaran/topeigen/sparse"
)

func TestNew_Formats(t *testing.T) {
	var buf bytes.Buffer
	l, err := logging.New(&buf, "json", "debug")
	require.NoError(t, err)
	l.Debug("hello", "n", 3)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	assert.Equal(t, "hello", rec["msg"])
	assert.EqualValues(t, 3, rec["n"])

	_, err = logging.New(&buf, "xml", "info")
	assert.Error(t, err)
	_, err = logging.New(&buf, "text", "loud")
	assert.Error(t, err)
}

func TestParseLevel(t *testing.T) {
	lvl, err := logging.ParseLevel("")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelInfo, lvl)

	lvl, err = logging.ParseLevel("WARN")
	require.NoError(t, err)
	assert.Equal(t, slog.LevelWarn, lvl)
}

func TestHelpers(t *testing.T) {
	var buf bytes.Buffer
	l := logging.NewText(&buf, slog.LevelInfo).WithK(2)
	ctx := context.Background()

	m, err := sparse.New([]sparse.Edge{{S: 0, T: 2, W: 1}, {S: 2, T: 2, W: 1}})
	require.NoError(t, err)
	l.LogMatrix(ctx, "mem", m)
	assert.Contains(t, buf.String(), "rows=3")
	assert.Contains(t, buf.String(), "isolated=1")
	assert.Contains(t, buf.String(), "k=2")

	buf.Reset()
	l.LogSlot(eigen.SlotStats{Slot: 1, Value: 1.5, Iterations: 30, Duration: time.Millisecond})
	assert.Contains(t, buf.String(), "slot=1")
	assert.NotContains(t, buf.String(), "delta=")

	buf.Reset()
	l.LogSlot(eigen.SlotStats{Slot: 1, Value: math.NaN(), ValueUndefined: true})
	assert.Contains(t, buf.String(), "level=WARN")
	assert.Contains(t, buf.String(), "eigenvalue=NaN")

	buf.Reset()
	l.LogResult(ctx, "out.txt", nil, errors.New("boom"))
	assert.Contains(t, buf.String(), "level=ERROR")

	buf.Reset()
	l.LogResult(ctx, "out.txt", &eigen.Result{Values: []float64{1}, Vectors: [][]float64{{1, 0}}}, nil)
	assert.Contains(t, buf.String(), "pairs=1")
	assert.Contains(t, buf.String(), "rows=2")
}

func TestNoop(t *testing.T) {
	assert.NotPanics(t, func() { logging.Noop().Error("dropped") })
}
