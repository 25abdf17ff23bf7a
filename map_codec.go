package pgrange

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

var errNullBound = errors.New("range bound cannot be NULL")

// MapCodec is an ElementCodec that delegates to the codec m has registered for OID. It lets ranges of element types
// this package does not know be encoded and decoded with pgx's own element codecs.
type MapCodec[T any] struct {
	Map *pgtype.Map
	OID uint32
}

func (c MapCodec[T]) EncodeBinary(buf []byte, v T) ([]byte, error) {
	plan := c.Map.PlanEncode(c.OID, pgtype.BinaryFormatCode, v)
	if plan == nil {
		return nil, fmt.Errorf("cannot encode %v as element of range", v)
	}

	newBuf, err := plan.Encode(v, buf)
	if err != nil {
		return nil, err
	}
	if newBuf == nil {
		return nil, errNullBound
	}

	return newBuf, nil
}

func (c MapCodec[T]) DecodeBinary(src []byte) (T, error) {
	var v T
	if src == nil {
		src = []byte{}
	}

	plan := c.Map.PlanScan(c.OID, pgtype.BinaryFormatCode, &v)
	if plan == nil {
		return v, fmt.Errorf("cannot scan into %T from range element", &v)
	}

	err := plan.Scan(src, &v)
	return v, err
}

// encodeElement appends v using codec's binary encode plan. pgx's numeric, date, time and timestamp codecs plan
// binary values without consulting a Map, so none is passed.
func encodeElement(codec pgtype.Codec, oid uint32, buf []byte, v any) ([]byte, error) {
	plan := codec.PlanEncode(nil, oid, pgtype.BinaryFormatCode, v)
	if plan == nil {
		return nil, fmt.Errorf("cannot encode %v as element of range", v)
	}

	newBuf, err := plan.Encode(v, buf)
	if err != nil {
		return nil, err
	}
	if newBuf == nil {
		return nil, errNullBound
	}

	return newBuf, nil
}

// scanElement decodes src into dst using codec's binary scan plan.
func scanElement(codec pgtype.Codec, oid uint32, src []byte, dst any) error {
	if src == nil {
		src = []byte{}
	}

	plan := codec.PlanScan(nil, oid, pgtype.BinaryFormatCode, dst)
	if plan == nil {
		return fmt.Errorf("cannot scan into %T from range element", dst)
	}

	return plan.Scan(src, dst)
}
