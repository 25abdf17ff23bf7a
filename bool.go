package pgrange

import "fmt"

// BoolCodec is the element codec for bool.
type BoolCodec struct{}

func (BoolCodec) EncodeBinary(buf []byte, v bool) ([]byte, error) {
	if v {
		return append(buf, 1), nil
	}
	return append(buf, 0), nil
}

func (BoolCodec) DecodeBinary(src []byte) (bool, error) {
	if len(src) != 1 {
		return false, fmt.Errorf("invalid length for bool: %v", len(src))
	}
	return src[0] == 1, nil
}
