package pgrange

import (
	"bytes"
	"encoding/json"
	"fmt"
)

// BoundType describes one side of a range.
type BoundType byte

const (
	Unbounded BoundType = 'U'
	Inclusive BoundType = 'i'
	Exclusive BoundType = 'e'
)

func (bt BoundType) String() string {
	switch bt {
	case Unbounded:
		return "unbounded"
	case Inclusive:
		return "inclusive"
	case Exclusive:
		return "exclusive"
	default:
		return fmt.Sprintf("BoundType(%d)", byte(bt))
	}
}

// Bound is one end of a range. An Unbounded bound always carries the zero value of T so that bounds of a comparable
// T can be compared with ==.
type Bound[T any] struct {
	Type  BoundType
	Value T
}

// Unbound returns a bound with no limit.
func Unbound[T any]() Bound[T] {
	return Bound[T]{Type: Unbounded}
}

// Include returns a bound whose limit v is part of the range.
func Include[T any](v T) Bound[T] {
	return Bound[T]{Type: Inclusive, Value: v}
}

// Exclude returns a bound whose limit v is not part of the range.
func Exclude[T any](v T) Bound[T] {
	return Bound[T]{Type: Exclusive, Value: v}
}

// Get returns the limit of b. ok is false if b is unbounded or its Type is not a known BoundType.
func (b Bound[T]) Get() (v T, ok bool) {
	if b.Type != Inclusive && b.Type != Exclusive {
		return v, false
	}
	return b.Value, true
}

func (b Bound[T]) IsUnbounded() bool {
	return b.Type == Unbounded
}

// MarshalJSON encodes b as "Unbounded", {"Included":v} or {"Excluded":v}.
func (b Bound[T]) MarshalJSON() ([]byte, error) {
	switch b.Type {
	case Unbounded:
		return []byte(`"Unbounded"`), nil
	case Inclusive:
		return json.Marshal(map[string]T{"Included": b.Value})
	case Exclusive:
		return json.Marshal(map[string]T{"Excluded": b.Value})
	default:
		return nil, fmt.Errorf("unknown bound type %v", b.Type)
	}
}

func (b *Bound[T]) UnmarshalJSON(src []byte) error {
	src = bytes.TrimSpace(src)
	if len(src) > 0 && src[0] == '"' {
		var s string
		if err := json.Unmarshal(src, &s); err != nil {
			return err
		}
		if s != "Unbounded" {
			return fmt.Errorf("invalid bound %q", s)
		}
		*b = Unbound[T]()
		return nil
	}

	var m map[string]json.RawMessage
	if err := json.Unmarshal(src, &m); err != nil {
		return err
	}
	if len(m) != 1 {
		return fmt.Errorf("invalid bound: expected exactly one key, got %d", len(m))
	}

	for k, raw := range m {
		var v T
		if err := json.Unmarshal(raw, &v); err != nil {
			return err
		}
		switch k {
		case "Included":
			*b = Include(v)
		case "Excluded":
			*b = Exclude(v)
		default:
			return fmt.Errorf("invalid bound key %q", k)
		}
	}

	return nil
}
