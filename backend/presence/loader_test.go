package presence

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"

	"presence-analyzer/backend/metrics"
)

func date(s string) time.Time {
	d, err := time.Parse(dateLayout, s)
	if err != nil {
		panic(err)
	}
	return d
}

func TestParseRow(t *testing.T) {
	record, err := ParseRow([]string{"10", "2013-09-10", "09:39:05", "17:59:52"})
	require.NoError(t, err)
	assert.Equal(t, 10, record.UserID)
	assert.Equal(t, date("2013-09-10"), record.Date)
	assert.Equal(t, Clock{9, 39, 5}, record.Start)
	assert.Equal(t, Clock{17, 59, 52}, record.End)

	_, err = ParseRow([]string{"10", "2013-09-10", "09:39:05"})
	assert.ErrorIs(t, err, ErrMalformedRow)

	_, err = ParseRow([]string{"10", "2013-09-10", "09:39:05", "17:59:52", "extra"})
	assert.ErrorIs(t, err, ErrMalformedRow)

	for _, fields := range [][]string{
		{"ten", "2013-09-10", "09:39:05", "17:59:52"},
		{"10", "10/09/2013", "09:39:05", "17:59:52"},
		{"10", "2013-09-10", "9am", "17:59:52"},
		{"10", "2013-09-10", "09:39:05", "24:00:00"},
	} {
		_, err := ParseRow(fields)
		assert.ErrorIs(t, err, ErrUnparsableField, "fields %v", fields)
		assert.False(t, errors.Is(err, ErrMalformedRow))
	}
}

func TestLoad(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	data, err := loader.Load("testdata/test_data.csv")
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{10, 11}, keys(data))

	sample := date("2013-09-10")
	require.Contains(t, data[10], sample)
	assert.Equal(t, Clock{9, 39, 5}, data[10][sample].Start)
	assert.Equal(t, Clock{17, 59, 52}, data[10][sample].End)
	assert.Len(t, data[10], 3)
	assert.Len(t, data[11], 6)
}

func TestLoadWrongData(t *testing.T) {
	loader := NewLoader(zap.NewNop())

	data, err := loader.Load("testdata/test_wrong_data.csv")
	require.NoError(t, err)

	// Rows with a bad field must not leak into the table under their user id.
	assert.ElementsMatch(t, []int{10, 11}, keys(data))
	assert.Len(t, data[10], 2)
	assert.Len(t, data[11], 1)

	// last row wins
	assert.Equal(t, Presence{Start: Clock{10, 0, 0}, End: Clock{18, 0, 0}}, data[10][date("2013-09-10")])
}

func TestLoadEmptyData(t *testing.T) {
	data, err := NewLoader(nil).Load("testdata/test_empty_data.csv")
	require.NoError(t, err)
	assert.Empty(t, data)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader(nil).Load("testdata/does_not_exist.csv")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "does_not_exist.csv")
}

func TestReadDuplicates(t *testing.T) {
	csv := strings.Join([]string{
		"1,2024-01-01,08:00:00,16:00:00",
		"1,2024-01-01,09:00:00,17:00:00",
		"1,2024-01-02,08:00:00,16:00:00",
		"2,2024-01-01,07:00:00,15:00:00",
	}, "\n")

	data, err := NewLoader(nil).Read(strings.NewReader(csv))
	require.NoError(t, err)
	assert.Len(t, data, 2)
	assert.Len(t, data[1], 2)
	assert.Equal(t, Clock{9, 0, 0}, data[1][date("2024-01-01")].Start)
}

func rowCount(result string) float64 {
	return testutil.ToFloat64(metrics.CSVRows.WithLabelValues(result))
}

func TestLoadSkippedRowsReporting(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	loader := NewLoader(zap.New(core))

	loaded := rowCount(metrics.RowLoaded)
	malformed := rowCount(metrics.RowMalformed)
	unparsable := rowCount(metrics.RowUnparsable)

	_, err := loader.Load("testdata/test_wrong_data.csv")
	require.NoError(t, err)

	assert.Equal(t, 4.0, rowCount(metrics.RowLoaded)-loaded)
	assert.Equal(t, 2.0, rowCount(metrics.RowMalformed)-malformed)
	assert.Equal(t, 5.0, rowCount(metrics.RowUnparsable)-unparsable)

	// header (line 1) and the short row (line 7) are skipped silently
	require.Equal(t, 5, logs.Len())
	entries := logs.FilterMessage("Problem with presence line").All()
	require.Len(t, entries, 5)

	lines := make([]int64, 0, len(entries))
	for _, entry := range entries {
		assert.Equal(t, zapcore.DebugLevel, entry.Level)
		line, ok := entry.ContextMap()["line"].(int64)
		require.True(t, ok, "entry without line field: %v", entry.ContextMap())
		lines = append(lines, line)
	}
	assert.Equal(t, []int64{4, 5, 6, 10, 11}, lines)
}

func TestReadByteOrderMark(t *testing.T) {
	data := "\uFEFF1,2024-01-01,08:00:00,16:00:00\r\n2,2024-01-02,08:00:00,16:00:00\r\n"
	table, err := NewLoader(zap.NewNop()).Read(strings.NewReader(data))
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, keys(table))
	assert.Equal(t, Presence{Clock{8, 0, 0}, Clock{16, 0, 0}}, table[1][date("2024-01-01")])
}

func TestReadReversedPresence(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	table, err := NewLoader(zap.New(core)).Read(strings.NewReader("5,2024-01-03,17:30:00,08:15:00\n"))
	require.NoError(t, err)
	assert.Len(t, table[5], 1)

	entries := logs.FilterMessage("Presence ends before it starts").All()
	require.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "17:30:00", fields["start"])
	assert.Equal(t, "08:15:00", fields["end"])
	assert.Equal(t, int64(1), fields["line"])
}

func keys(t Table) []int {
	ids := make([]int, 0, len(t))
	for id := range t {
		ids = append(ids, id)
	}
	return ids
}
