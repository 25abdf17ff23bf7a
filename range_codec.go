package pgrange

import (
	"encoding/binary"
	"fmt"

	"github.com/jackc/pgio"
)

// ElementCodec encodes and decodes the binary format of a range's element type.
type ElementCodec[T any] interface {
	// EncodeBinary appends the binary format of v to buf. It must not write a length prefix.
	EncodeBinary(buf []byte, v T) (newBuf []byte, err error)

	// DecodeBinary decodes src, which holds exactly one element with its length prefix already removed.
	DecodeBinary(src []byte) (T, error)
}

// EncodeRange appends the binary format of r to buf. The result is never nil: a range has no NULL representation of
// its own, even when both sides are unbounded.
func EncodeRange[T any](c ElementCodec[T], r Range[T], buf []byte) (newBuf []byte, err error) {
	flags, err := rangeFlagsFor(r.Start.Type, r.End.Type)
	if err != nil {
		return nil, err
	}

	if buf == nil {
		buf = make([]byte, 0, 1)
	}
	buf = append(buf, byte(flags))

	if r.Start.Type != Unbounded {
		buf, err = appendElement(c, buf, r.Start.Value)
		if err != nil {
			return nil, fmt.Errorf("lower bound: %w", err)
		}
	}

	if r.End.Type != Unbounded {
		buf, err = appendElement(c, buf, r.End.Value)
		if err != nil {
			return nil, fmt.Errorf("upper bound: %w", err)
		}
	}

	return buf, nil
}

func appendElement[T any](c ElementCodec[T], buf []byte, v T) ([]byte, error) {
	sp := len(buf)
	buf = pgio.AppendInt32(buf, -1)

	buf, err := c.EncodeBinary(buf, v)
	if err != nil {
		return nil, err
	}

	pgio.SetInt32(buf[sp:], int32(len(buf[sp:])-4))
	return buf, nil
}

// DecodeRange decodes src, which must hold exactly one binary range.
func DecodeRange[T any](c ElementCodec[T], src []byte) (Range[T], error) {
	r, rest, err := ReadRange(c, src)
	if err != nil {
		return Range[T]{}, err
	}
	if len(rest) != 0 {
		return Range[T]{}, formatErrorf("%d trailing bytes", len(rest))
	}
	return r, nil
}

// ReadRange decodes the binary range at the start of src and returns the bytes that follow it.
func ReadRange[T any](c ElementCodec[T], src []byte) (r Range[T], rest []byte, err error) {
	if len(src) == 0 {
		return Range[T]{}, nil, formatErrorf("range payload is empty")
	}

	flags := rangeFlags(src[0])
	rest = src[1:]

	if flags.has(emptyMask) {
		return Empty[T](), rest, nil
	}

	lowerType, upperType := flags.boundTypes()

	if lowerType != Unbounded {
		var elem []byte
		elem, rest, err = nextElement(rest, "lower")
		if err != nil {
			return Range[T]{}, nil, err
		}
		v, err := c.DecodeBinary(elem)
		if err != nil {
			return Range[T]{}, nil, fmt.Errorf("lower bound: %w", err)
		}
		r.Start = Bound[T]{Type: lowerType, Value: v}
	} else {
		r.Start = Unbound[T]()
	}

	if upperType != Unbounded {
		var elem []byte
		elem, rest, err = nextElement(rest, "upper")
		if err != nil {
			return Range[T]{}, nil, err
		}
		v, err := c.DecodeBinary(elem)
		if err != nil {
			return Range[T]{}, nil, fmt.Errorf("upper bound: %w", err)
		}
		r.End = Bound[T]{Type: upperType, Value: v}
	} else {
		r.End = Unbound[T]()
	}

	return r, rest, nil
}

func nextElement(src []byte, side string) (elem, rest []byte, err error) {
	if len(src) < 4 {
		return nil, nil, formatErrorf("%s bound length needs 4 bytes, %d remain", side, len(src))
	}

	n := int32(binary.BigEndian.Uint32(src))
	src = src[4:]

	if n < 0 {
		return nil, nil, formatErrorf("%s bound is NULL", side)
	}
	if len(src) < int(n) {
		return nil, nil, formatErrorf("%s bound needs %d bytes, %d remain", side, n, len(src))
	}

	return src[:n], src[n:], nil
}
