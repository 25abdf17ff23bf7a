package pgrange

import (
	"fmt"
	"reflect"
	"strings"
)

// Range is a PostgreSQL range value. No ordering is enforced between Start and End: a backwards range is
// representable and is encoded as is.
//
// The zero Range has no bound types and cannot be encoded. It reads as unbounded on both sides; use Full for the
// range of all values.
type Range[T any] struct {
	Start Bound[T] `json:"start"`
	End   Bound[T] `json:"end"`
}

// New returns the range between start and end.
func New[T any](start, end Bound[T]) Range[T] {
	return Range[T]{Start: start, End: end}
}

// FromBounds returns the range for a [start, end] pair.
func FromBounds[T any](b [2]Bound[T]) Range[T] {
	return Range[T]{Start: b[0], End: b[1]}
}

// HalfOpen returns [lo,hi).
func HalfOpen[T any](lo, hi T) Range[T] {
	return Range[T]{Start: Include(lo), End: Exclude(hi)}
}

// AtLeast returns [lo,).
func AtLeast[T any](lo T) Range[T] {
	return Range[T]{Start: Include(lo), End: Unbound[T]()}
}

// Closed returns [lo,hi].
func Closed[T any](lo, hi T) Range[T] {
	return Range[T]{Start: Include(lo), End: Include(hi)}
}

// LessThan returns (,hi).
func LessThan[T any](hi T) Range[T] {
	return Range[T]{Start: Unbound[T](), End: Exclude(hi)}
}

// AtMost returns (,hi].
func AtMost[T any](hi T) Range[T] {
	return Range[T]{Start: Unbound[T](), End: Include(hi)}
}

// Full returns (,).
func Full[T any]() Range[T] {
	return Range[T]{Start: Unbound[T](), End: Unbound[T]()}
}

// Empty returns (zero,zero). Excluding both ends of a single point denotes the empty set for every ordered type, so
// this is the value an empty range received from the server decodes to.
func Empty[T any]() Range[T] {
	var zero T
	return Range[T]{Start: Exclude(zero), End: Exclude(zero)}
}

// IsEmpty reports whether r has the exact shape returned by Empty. It does not evaluate whether bounds that differ
// from that shape describe an empty set.
func (r Range[T]) IsEmpty() bool {
	if r.Start.Type != Exclusive || r.End.Type != Exclusive {
		return false
	}
	return isZero(&r.Start.Value) && isZero(&r.End.Value)
}

func isZero[T any](v *T) bool {
	return reflect.ValueOf(v).Elem().IsZero()
}

// StartValue returns the limit of the start bound, or false if it is unbounded. Whether the limit is included is not
// reported; inspect r.Start.Type for that.
func (r Range[T]) StartValue() (T, bool) {
	return r.Start.Get()
}

// EndValue returns the limit of the end bound, or false if it is unbounded. Whether the limit is included is not
// reported; inspect r.End.Type for that.
func (r Range[T]) EndValue() (T, bool) {
	return r.End.Get()
}

// Pair returns r as a [start, end] pair.
func (r Range[T]) Pair() [2]Bound[T] {
	return [2]Bound[T]{r.Start, r.End}
}

// String returns r in PostgreSQL range literal notation, e.g. [1,5), (,10] or (,).
func (r Range[T]) String() string {
	var sb strings.Builder

	switch r.Start.Type {
	case Inclusive:
		fmt.Fprintf(&sb, "[%v,", formatValue(&r.Start.Value))
	case Exclusive:
		fmt.Fprintf(&sb, "(%v,", formatValue(&r.Start.Value))
	default:
		sb.WriteString("(,")
	}

	switch r.End.Type {
	case Inclusive:
		fmt.Fprintf(&sb, "%v]", formatValue(&r.End.Value))
	case Exclusive:
		fmt.Fprintf(&sb, "%v)", formatValue(&r.End.Value))
	default:
		sb.WriteString(")")
	}

	return sb.String()
}

// formatValue returns v in a form fmt prints well. Types like apd.Decimal only implement fmt.Stringer on the pointer.
func formatValue[T any](v *T) any {
	if s, ok := any(v).(fmt.Stringer); ok {
		return s.String()
	}
	return *v
}
