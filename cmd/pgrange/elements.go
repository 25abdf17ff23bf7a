package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/cockroachdb/apd"
	"github.com/jackc/pgrange"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

// element decodes and encodes ranges of one type table entry, parsing bound values from the command line.
type element interface {
	decode(src []byte) (pgrange.TypeInfo, string, error)
	encode(b boundArgs) ([]byte, error)
	compatible(dt *pgtype.Type) bool
}

type typedElement[T any] struct {
	parse func(string) (T, error)
}

func (e typedElement[T]) decode(src []byte) (pgrange.TypeInfo, string, error) {
	ti, _ := pgrange.LookupType[T]()
	r, err := pgrange.Decode[T](src)
	if err != nil {
		return ti, "", err
	}
	if r.IsEmpty() {
		return ti, "empty", nil
	}
	return ti, r.String(), nil
}

func (e typedElement[T]) encode(b boundArgs) ([]byte, error) {
	start, err := makeBound(b.Start, !b.StartExclusive, e.parse)
	if err != nil {
		return nil, fmt.Errorf("start: %w", err)
	}
	end, err := makeBound(b.End, b.EndInclusive, e.parse)
	if err != nil {
		return nil, fmt.Errorf("end: %w", err)
	}
	return pgrange.Encode(pgrange.New(start, end), nil)
}

func (e typedElement[T]) compatible(dt *pgtype.Type) bool {
	return pgrange.Compatible[T](dt)
}

func makeBound[T any](s *string, inclusive bool, parse func(string) (T, error)) (pgrange.Bound[T], error) {
	if s == nil {
		return pgrange.Unbound[T](), nil
	}
	v, err := parse(*s)
	if err != nil {
		return pgrange.Bound[T]{}, err
	}
	if inclusive {
		return pgrange.Include(v), nil
	}
	return pgrange.Exclude(v), nil
}

// elements is keyed by range type name. numrange and tstzrange use the Go types that can hold every server value.
var elements = map[string]element{
	"boolrange":   typedElement[bool]{parse: strconv.ParseBool},
	"int1range":   typedElement[int8]{parse: parseInt[int8](8)},
	"int2range":   typedElement[int16]{parse: parseInt[int16](16)},
	"int4range":   typedElement[int32]{parse: parseInt[int32](32)},
	"int8range":   typedElement[int64]{parse: parseInt[int64](64)},
	"float4range": typedElement[float32]{parse: parseFloat32},
	"float8range": typedElement[float64]{parse: parseFloat64},
	"numrange":    typedElement[apd.Decimal]{parse: parseAPD},
	"daterange":   typedElement[pgrange.Date]{parse: parseDate},
	"timerange":   typedElement[pgrange.Time]{parse: parseTime},
	"tsrange":     typedElement[pgrange.Timestamp]{parse: parseTimestamp},
	"tstzrange":   typedElement[pgrange.Timestamptz]{parse: parseTimestamptz},
}

// decimalElement is used for numrange when --decimal is given.
var decimalElement = typedElement[decimal.Decimal]{parse: decimal.NewFromString}

func parseInt[T int8 | int16 | int32 | int64](bitSize int) func(string) (T, error) {
	return func(s string) (T, error) {
		n, err := strconv.ParseInt(s, 10, bitSize)
		return T(n), err
	}
}

func parseFloat32(s string) (float32, error) {
	f, err := strconv.ParseFloat(s, 32)
	return float32(f), err
}

func parseFloat64(s string) (float64, error) {
	return strconv.ParseFloat(s, 64)
}

func parseAPD(s string) (apd.Decimal, error) {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		return apd.Decimal{}, err
	}
	return *d, nil
}

func parseInfinity(s string) (pgrange.InfinityModifier, bool) {
	switch strings.ToLower(s) {
	case "infinity":
		return pgrange.Infinity, true
	case "-infinity":
		return pgrange.NegativeInfinity, true
	}
	return pgrange.Finite, false
}

func parseDate(s string) (pgrange.Date, error) {
	if im, ok := parseInfinity(s); ok {
		return pgrange.Date{InfinityModifier: im}, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return pgrange.Date{}, err
	}
	return pgrange.Date{Time: t}, nil
}

func parseTime(s string) (pgrange.Time, error) {
	if s == "24:00:00" {
		return pgrange.NewTime(24, 0, 0, 0), nil
	}
	t, err := time.Parse("15:04:05.999999", s)
	if err != nil {
		return pgrange.Time{}, err
	}
	return pgrange.NewTime(t.Hour(), t.Minute(), t.Second(), t.Nanosecond()/1000), nil
}

func parseTimestamp(s string) (pgrange.Timestamp, error) {
	if im, ok := parseInfinity(s); ok {
		return pgrange.Timestamp{InfinityModifier: im}, nil
	}
	t, err := time.Parse("2006-01-02 15:04:05.999999", s)
	if err != nil {
		return pgrange.Timestamp{}, err
	}
	return pgrange.Timestamp{Time: t}, nil
}

func parseTimestamptz(s string) (pgrange.Timestamptz, error) {
	if im, ok := parseInfinity(s); ok {
		return pgrange.Timestamptz{InfinityModifier: im}, nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return pgrange.Timestamptz{}, err
	}
	return pgrange.Timestamptz{Time: t}, nil
}
