package pgrange

import (
	"encoding/binary"
	"fmt"
	"math"

	"github.com/jackc/pgio"
)

// Float4Codec is the element codec for float32.
type Float4Codec struct{}

func (Float4Codec) EncodeBinary(buf []byte, v float32) ([]byte, error) {
	return pgio.AppendUint32(buf, math.Float32bits(v)), nil
}

func (Float4Codec) DecodeBinary(src []byte) (float32, error) {
	if len(src) != 4 {
		return 0, fmt.Errorf("invalid length for float4: %v", len(src))
	}
	return math.Float32frombits(binary.BigEndian.Uint32(src)), nil
}

// Float8Codec is the element codec for float64.
type Float8Codec struct{}

func (Float8Codec) EncodeBinary(buf []byte, v float64) ([]byte, error) {
	return pgio.AppendUint64(buf, math.Float64bits(v)), nil
}

func (Float8Codec) DecodeBinary(src []byte) (float64, error) {
	if len(src) != 8 {
		return 0, fmt.Errorf("invalid length for float8: %v", len(src))
	}
	return math.Float64frombits(binary.BigEndian.Uint64(src)), nil
}
