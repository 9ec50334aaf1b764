package collections_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hasbyte1/go-indexed-collections/collections"
)

func decodeRecords(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	sc := bufio.NewScanner(buf)
	for sc.Scan() {
		var rec map[string]any
		require.NoError(t, json.Unmarshal(sc.Bytes(), &rec))
		out = append(out, rec)
	}
	return out
}

func TestLogger_Records(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	l := collections.MustNew(collections.Config[int, int]{
		By: collections.ByFuncs(map[string]collections.KeyFunc[int]{
			"id": func(i int) any {
				if i < 0 {
					panic("negative")
				}
				return i
			},
		}),
		Logger: logger,
	})

	_, err := l.Push(1, 2)
	require.NoError(t, err)
	_, err = l.Push(-1)
	require.Error(t, err)
	l.Pop()

	recs := decodeRecords(t, &buf)
	require.Len(t, recs, 3)

	assert.Equal(t, "DEBUG", recs[0]["level"])
	assert.Equal(t, "batch indexed", recs[0]["msg"])
	assert.Equal(t, "push", recs[0]["op"])
	assert.EqualValues(t, 2, recs[0]["inputs"])
	assert.EqualValues(t, 2, recs[0]["length"])

	assert.Equal(t, "WARN", recs[1]["level"])
	assert.Equal(t, "batch rejected", recs[1]["msg"])
	assert.Contains(t, recs[1]["error"], "negative")

	assert.Equal(t, "elements retracted", recs[2]["msg"])
	assert.Equal(t, "pop", recs[2]["op"])
	assert.EqualValues(t, 1, recs[2]["count"])
	assert.EqualValues(t, 1, recs[2]["length"])
}

func TestLogger_Constructors(t *testing.T) {
	assert.NotNil(t, collections.NewLogger(nil))
	assert.False(t, collections.NoopLogger().Enabled(t.Context(), slog.LevelError))

	var buf bytes.Buffer
	lg := collections.NewLogger(slog.NewTextHandler(&buf, nil))
	lg.LogMaterialize(collections.OpSplice, 3, 0, assert.AnError)
	assert.Contains(t, buf.String(), "op=splice")
}

func TestBasicMetricsCollector(t *testing.T) {
	m := &collections.BasicMetricsCollector{}
	l := collections.MustNew(collections.Config[int, int]{
		As:      collections.Constructor(2, func(a []int) (int, error) { return a[0] + a[1], nil }),
		Metrics: m,
	})

	_, err := l.Push(1, 2, 3, 4)
	require.NoError(t, err)
	_, err = l.Push(5)
	require.Error(t, err)
	_, err = l.Splice(0, 1)
	require.NoError(t, err)
	l.Remove(99)
	l.Clear()

	assert.Equal(t, collections.BasicMetricsStats{
		InsertCount:  2,
		InsertItems:  2,
		InsertErrors: 1,
		RemoveCount:  2,
		RemoveItems:  2,
	}, m.GetStats())
	assert.GreaterOrEqual(t, m.InsertTotalNanos.Load(), int64(0))
}
