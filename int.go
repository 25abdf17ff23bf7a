package pgrange

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

// Int1Codec is the element codec for int8 values stored in the single byte PostgreSQL "char" type.
type Int1Codec struct{}

func (Int1Codec) EncodeBinary(buf []byte, v int8) ([]byte, error) {
	return append(buf, byte(v)), nil
}

func (Int1Codec) DecodeBinary(src []byte) (int8, error) {
	if len(src) != 1 {
		return 0, fmt.Errorf("invalid length for char: %v", len(src))
	}
	return int8(src[0]), nil
}

// Int2Codec is the element codec for int16.
type Int2Codec struct{}

func (Int2Codec) EncodeBinary(buf []byte, v int16) ([]byte, error) {
	return pgio.AppendInt16(buf, v), nil
}

func (Int2Codec) DecodeBinary(src []byte) (int16, error) {
	if len(src) != 2 {
		return 0, fmt.Errorf("invalid length for int2: %v", len(src))
	}
	return int16(binary.BigEndian.Uint16(src)), nil
}

// Int4Codec is the element codec for int32.
type Int4Codec struct{}

func (Int4Codec) EncodeBinary(buf []byte, v int32) ([]byte, error) {
	return pgio.AppendInt32(buf, v), nil
}

func (Int4Codec) DecodeBinary(src []byte) (int32, error) {
	if len(src) != 4 {
		return 0, fmt.Errorf("invalid length for int4: %v", len(src))
	}
	return int32(binary.BigEndian.Uint32(src)), nil
}

// Int8Codec is the element codec for int64.
type Int8Codec struct{}

func (Int8Codec) EncodeBinary(buf []byte, v int64) ([]byte, error) {
	return pgio.AppendInt64(buf, v), nil
}

func (Int8Codec) DecodeBinary(src []byte) (int64, error) {
	if len(src) != 8 {
		return 0, fmt.Errorf("invalid length for int8: %v", len(src))
	}
	return int64(binary.BigEndian.Uint64(src)), nil
}
