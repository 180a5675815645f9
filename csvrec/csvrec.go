// Package csvrec reads the ';' delimited feed files. Every line holds exactly
// four fields, the first being a "yyyy-MM-dd HH:mm:ss" timestamp and the last
// a decimal literal.
package csvrec

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

const (
	Separator       = ";"
	FieldsPerRecord = 4

	TimestampFormat = "2006-01-02 15:04:05"
)

type ErrorKind int

const (
	KindLineFormat ErrorKind = iota
	KindDateFormat
	KindNumberFormat
)

func (k ErrorKind) String() string {
	switch k {
	case KindLineFormat:
		return "line"
	case KindDateFormat:
		return "date"
	case KindNumberFormat:
		return "number"
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// ParseError describes the first bad field (or line) in a feed file.
type ParseError struct {
	// Human name of the feed, eg. "payments" or "exchange rates"
	File string
	// 1-based
	Line int
	Kind ErrorKind
	// The offending raw field, or the whole raw line for KindLineFormat
	Raw string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("Wrong %s format in %s file: %s", e.Kind, e.File, e.Raw)
}

// Record is one raw line split into its fields.
type Record struct {
	Line   int
	Fields []string
}

// ReadRecords reads every line of r. Fields are split on Separator only;
// quotes carry no meaning. It fails on the first line which does not have
// exactly FieldsPerRecord fields, including an empty line. A trailing newline
// at the end of the input does not count as an empty line.
func ReadRecords(r io.Reader, file string) ([]Record, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 4096), 1024*1024)

	records := make([]Record, 0, 20)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		fields := strings.Split(line, Separator)
		if len(fields) != FieldsPerRecord {
			return nil, &ParseError{File: file, Line: lineNo, Kind: KindLineFormat, Raw: line}
		}
		records = append(records, Record{Line: lineNo, Fields: fields})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("Failed to read %s file: %w", file, err)
	}
	return records, nil
}

// Timestamp parses field idx as a zero-padded TimestampFormat value.
func (r Record) Timestamp(idx int, file string) (time.Time, error) {
	raw := r.Fields[idx]
	// time.Parse tolerates a single digit hour, the feed format does not.
	if len(raw) != len(TimestampFormat) {
		return time.Time{}, r.fieldError(file, KindDateFormat, raw)
	}
	t, err := time.Parse(TimestampFormat, raw)
	if err != nil {
		return time.Time{}, r.fieldError(file, KindDateFormat, raw)
	}
	return t, nil
}

// Decimal parses field idx as an exact decimal, keeping the literal's scale.
func (r Record) Decimal(idx int, file string) (decimal.Decimal, error) {
	raw := r.Fields[idx]
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Decimal{}, r.fieldError(file, KindNumberFormat, raw)
	}
	return d, nil
}

func (r Record) fieldError(file string, kind ErrorKind, raw string) *ParseError {
	return &ParseError{File: file, Line: r.Line, Kind: kind, Raw: raw}
}
