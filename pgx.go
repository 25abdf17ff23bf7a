package pgrange

import (
	"context"
	"fmt"
	"unsafe"

	"github.com/jackc/pgx/v5/pgtype"
)

// IsNull implements the pgtype.RangeValuer interface. A Range is never NULL; use *Range for nullable columns.
func (r Range[T]) IsNull() bool {
	return false
}

// BoundTypes implements the pgtype.RangeValuer interface.
func (r Range[T]) BoundTypes() (lower, upper pgtype.BoundType) {
	return toPgxBoundType(r.Start.Type), toPgxBoundType(r.End.Type)
}

// Bounds implements the pgtype.RangeValuer interface.
func (r Range[T]) Bounds() (lower, upper any) {
	return boundValue(r.Start.Value), boundValue(r.End.Value)
}

// boundValue returns v in a form pgx can encode as a range element. pgx's "char" codec only accepts byte and rune.
func boundValue(v any) any {
	if i, ok := v.(int8); ok {
		return byte(i)
	}
	return v
}

// ScanNull implements the pgtype.RangeScanner interface.
func (r *Range[T]) ScanNull() error {
	return fmt.Errorf("cannot scan NULL into %T", r)
}

// ScanBounds implements the pgtype.RangeScanner interface.
func (r *Range[T]) ScanBounds() (lowerTarget, upperTarget any) {
	return boundTarget(&r.Start.Value), boundTarget(&r.End.Value)
}

// boundTarget returns a scan target for the bound value at p. pgx's "char" codec only scans into *byte and *rune, and
// int8 has the same size and layout as byte.
func boundTarget(p any) any {
	if i, ok := p.(*int8); ok {
		return (*byte)(unsafe.Pointer(i))
	}
	return p
}

// SetBoundTypes implements the pgtype.RangeScanner interface. An empty range is stored as Empty().
func (r *Range[T]) SetBoundTypes(lower, upper pgtype.BoundType) error {
	if lower == pgtype.Empty || upper == pgtype.Empty {
		*r = Empty[T]()
		return nil
	}

	lt, err := fromPgxBoundType(lower)
	if err != nil {
		return err
	}
	ut, err := fromPgxBoundType(upper)
	if err != nil {
		return err
	}

	r.Start.Type = lt
	if lt == Unbounded {
		r.Start = Unbound[T]()
	}
	r.End.Type = ut
	if ut == Unbounded {
		r.End = Unbound[T]()
	}

	return nil
}

func toPgxBoundType(bt BoundType) pgtype.BoundType {
	switch bt {
	case Inclusive:
		return pgtype.Inclusive
	case Exclusive:
		return pgtype.Exclusive
	case Unbounded:
		return pgtype.Unbounded
	default:
		return pgtype.BoundType(bt)
	}
}

func fromPgxBoundType(bt pgtype.BoundType) (BoundType, error) {
	switch bt {
	case pgtype.Inclusive:
		return Inclusive, nil
	case pgtype.Exclusive:
		return Exclusive, nil
	case pgtype.Unbounded:
		return Unbounded, nil
	default:
		return 0, fmt.Errorf("unknown bound type: %v", bt)
	}
}

// RegisterDefaultPgTypes registers Range[T] and []Range[T] as the default PostgreSQL types for every entry in the
// type table whose range or array type m knows by name.
func RegisterDefaultPgTypes(m *pgtype.Map) {
	for _, ti := range typeInfos {
		if _, ok := m.TypeForName(ti.RangeName); ok {
			m.RegisterDefaultPgType(ti.rangeValue, ti.RangeName)
		}
		if _, ok := m.TypeForName(ti.ArrayName); ok {
			m.RegisterDefaultPgType(ti.arrayValue, ti.ArrayName)
		}
	}
}

// TypeLoader is the subset of *pgx.Conn LoadTypes needs.
type TypeLoader interface {
	LoadType(ctx context.Context, typeName string) (*pgtype.Type, error)
	TypeMap() *pgtype.Map
}

// LoadTypes loads range types that are not built in to PostgreSQL (e.g. float8range) and their array types from the
// server and registers them with the connection's type map. Each name must already exist on the server.
func LoadTypes(ctx context.Context, conn TypeLoader, rangeNames ...string) error {
	m := conn.TypeMap()

	for _, name := range rangeNames {
		t, err := conn.LoadType(ctx, name)
		if err != nil {
			return fmt.Errorf("failed to load type %s: %w", name, err)
		}
		m.RegisterType(t)

		arrayName := "_" + name
		t, err = conn.LoadType(ctx, arrayName)
		if err != nil {
			return fmt.Errorf("failed to load type %s: %w", arrayName, err)
		}
		m.RegisterType(t)
	}

	RegisterDefaultPgTypes(m)

	return nil
}
