package presence

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"go.uber.org/zap"

	"presence-analyzer/backend/metrics"
)

var (
	// ErrMalformedRow marks a row without exactly four fields, such as a header or footer line.
	ErrMalformedRow = errors.New("presence row must have 4 fields")
	// ErrUnparsableField marks a four-field row with a field that does not parse.
	ErrUnparsableField = errors.New("unparsable presence field")
)

// ParseRow turns the fields of one CSV line into a Record.
func ParseRow(fields []string) (Record, error) {
	if len(fields) != 4 {
		return Record{}, ErrMalformedRow
	}

	userID, err := strconv.Atoi(strings.TrimSpace(fields[0]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: user_id %q", ErrUnparsableField, fields[0])
	}
	date, err := time.Parse(dateLayout, strings.TrimSpace(fields[1]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: date %q", ErrUnparsableField, fields[1])
	}
	start, err := ParseClock(strings.TrimSpace(fields[2]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: start %q", ErrUnparsableField, fields[2])
	}
	end, err := ParseClock(strings.TrimSpace(fields[3]))
	if err != nil {
		return Record{}, fmt.Errorf("%w: end %q", ErrUnparsableField, fields[3])
	}

	return Record{
		UserID:   userID,
		Date:     date,
		Presence: Presence{Start: start, End: end},
	}, nil
}

// Loader reads presence CSV files into a Table.
type Loader struct {
	log *zap.Logger
}

func NewLoader(log *zap.Logger) *Loader {
	if log == nil {
		log = zap.NewNop()
	}
	return &Loader{log: log}
}

// Load reads the whole file at path. Rows that do not parse are skipped;
// only a failure to open or read the file is returned as an error.
func (l *Loader) Load(path string) (Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open presence data %s: %w", path, err)
	}
	defer f.Close()

	return l.Read(f)
}

// Read builds a Table from CSV content.
func (l *Loader) Read(r io.Reader) (Table, error) {
	reader := csv.NewReader(skipByteOrderMark(r))
	reader.FieldsPerRecord = -1

	table := make(Table)
	for {
		fields, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if !errors.As(err, &parseErr) {
				return nil, fmt.Errorf("read presence data: %w", err)
			}
			metrics.CSVRows.WithLabelValues(metrics.RowUnparsable).Inc()
			l.log.Debug("Problem with presence line", zap.Int("line", parseErr.StartLine), zap.Error(err))
			continue
		}

		line, _ := reader.FieldPos(0)
		record, err := ParseRow(fields)
		switch {
		case errors.Is(err, ErrMalformedRow):
			// header and footer lines
			metrics.CSVRows.WithLabelValues(metrics.RowMalformed).Inc()
			continue
		case err != nil:
			metrics.CSVRows.WithLabelValues(metrics.RowUnparsable).Inc()
			l.log.Debug("Problem with presence line", zap.Int("line", line), zap.Error(err))
			continue
		}

		if record.End.Seconds() < record.Start.Seconds() {
			l.log.Debug("Presence ends before it starts",
				zap.Int("line", line),
				zap.Stringer("start", record.Start),
				zap.Stringer("end", record.End),
			)
		}

		metrics.CSVRows.WithLabelValues(metrics.RowLoaded).Inc()
		table.add(record)
	}

	return table, nil
}

var byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

// skipByteOrderMark drops a leading UTF-8 BOM so the first row keeps a numeric user id.
func skipByteOrderMark(r io.Reader) io.Reader {
	br := bufio.NewReader(r)
	if head, err := br.Peek(len(byteOrderMark)); err == nil && bytes.Equal(head, byteOrderMark) {
		br.Discard(len(byteOrderMark))
	}
	return br
}
