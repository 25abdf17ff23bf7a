package pgrange

import (
	"github.com/jackc/pgx/v5/pgtype"
)

// Compatible reports whether t is a range type whose element type can be decoded into T. It is false for anything
// that is not a range, for ranges of another element type, and for element types not in the type table.
func Compatible[T any](t *pgtype.Type) bool {
	if t == nil {
		return false
	}

	rc, ok := t.Codec.(*pgtype.RangeCodec)
	if !ok || rc.ElementType == nil {
		return false
	}

	ti, ok := LookupType[T]()
	if !ok {
		return false
	}

	return ti.elementCompatible(rc.ElementType)
}

func (ti TypeInfo) elementCompatible(et *pgtype.Type) bool {
	if ti.ElementOID != 0 && et.OID != 0 {
		return ti.ElementOID == et.OID
	}
	return ti.ElementName == et.Name
}
