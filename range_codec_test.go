package pgrange_test

import (
	"errors"
	"testing"

	"github.com/jackc/pgrange"
	"github.com/stretchr/testify/require"
)

// textCodec is a variable width element codec used to check that the range codec frames elements itself.
type textCodec struct{}

func (textCodec) EncodeBinary(buf []byte, v string) ([]byte, error) {
	return append(buf, v...), nil
}

func (textCodec) DecodeBinary(src []byte) (string, error) {
	return string(src), nil
}

var errBadElement = errors.New("bad element")

// failingCodec fails to encode and decode negative values.
type failingCodec struct{}

func (failingCodec) EncodeBinary(buf []byte, v int32) ([]byte, error) {
	if v < 0 {
		return nil, errBadElement
	}
	return pgrange.Int4Codec{}.EncodeBinary(buf, v)
}

func (failingCodec) DecodeBinary(src []byte) (int32, error) {
	n, err := pgrange.Int4Codec{}.DecodeBinary(src)
	if err != nil {
		return 0, err
	}
	if n < 0 {
		return 0, errBadElement
	}
	return n, nil
}

func TestEncodeRangeInt4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		r        pgrange.Range[int32]
		expected []byte
	}{
		{
			r:        pgrange.HalfOpen[int32](1, 5),
			expected: []byte{0x02, 0, 0, 0, 4, 0, 0, 0, 1, 0, 0, 0, 4, 0, 0, 0, 5},
		},
		{
			r:        pgrange.Closed[int32](1, 5),
			expected: []byte{0x06, 0, 0, 0, 4, 0, 0, 0, 1, 0, 0, 0, 4, 0, 0, 0, 5},
		},
		{
			r:        pgrange.New(pgrange.Exclude[int32](1), pgrange.Exclude[int32](5)),
			expected: []byte{0x00, 0, 0, 0, 4, 0, 0, 0, 1, 0, 0, 0, 4, 0, 0, 0, 5},
		},
		{
			r:        pgrange.AtMost[int32](10),
			expected: []byte{0x0c, 0, 0, 0, 4, 0, 0, 0, 10},
		},
		{
			r:        pgrange.LessThan[int32](-1),
			expected: []byte{0x08, 0, 0, 0, 4, 0xff, 0xff, 0xff, 0xff},
		},
		{
			r:        pgrange.AtLeast[int32](3),
			expected: []byte{0x12, 0, 0, 0, 4, 0, 0, 0, 3},
		},
		{
			r:        pgrange.Full[int32](),
			expected: []byte{0x18},
		},
	}

	for i, tt := range tests {
		buf, err := pgrange.EncodeRange[int32](pgrange.Int4Codec{}, tt.r, nil)
		require.NoErrorf(t, err, "%d", i)
		require.Equalf(t, tt.expected, buf, "%d. %v", i, tt.r)
	}
}

func TestEncodeRangeUnboundedLowerInclusiveUpperFlags(t *testing.T) {
	buf, err := pgrange.Encode(pgrange.AtMost[int32](42), nil)
	require.NoError(t, err)

	flags := buf[0]
	require.Equal(t, byte(0x04|0x08), flags)
	require.Zero(t, flags&0x02)
	require.Zero(t, flags&0x10)

	// Exactly one element follows the flags.
	require.Len(t, buf, 1+4+4)
}

func TestEncodeRangeLength(t *testing.T) {
	t.Parallel()

	int4Len := func(r pgrange.Range[int32]) int {
		buf, err := pgrange.Encode(r, nil)
		require.NoError(t, err)
		return len(buf)
	}
	require.Equal(t, 1+8+8, int4Len(pgrange.HalfOpen[int32](1, 2)))
	require.Equal(t, 1+8, int4Len(pgrange.AtLeast[int32](1)))
	require.Equal(t, 1+8, int4Len(pgrange.LessThan[int32](1)))
	require.Equal(t, 1, int4Len(pgrange.Full[int32]()))

	buf, err := pgrange.Encode(pgrange.HalfOpen[int64](1, 2), nil)
	require.NoError(t, err)
	require.Len(t, buf, 1+12+12)

	buf, err = pgrange.EncodeRange[string](textCodec{}, pgrange.HalfOpen("a", "bcd"), nil)
	require.NoError(t, err)
	require.Equal(t, []byte{0x02, 0, 0, 0, 1, 'a', 0, 0, 0, 3, 'b', 'c', 'd'}, buf)
}

func TestEncodeRangeAppendsToBuf(t *testing.T) {
	buf, err := pgrange.Encode(pgrange.Full[int32](), []byte{0xaa, 0xbb})
	require.NoError(t, err)
	require.Equal(t, []byte{0xaa, 0xbb, 0x18}, buf)
}

func TestEncodeRangeIsNeverNull(t *testing.T) {
	buf, err := pgrange.Encode(pgrange.Full[int32](), nil)
	require.NoError(t, err)
	require.NotNil(t, buf)
}

func TestEncodeRangeUnknownBoundType(t *testing.T) {
	_, err := pgrange.Encode(pgrange.Range[int32]{Start: pgrange.Bound[int32]{Type: 'x'}, End: pgrange.Unbound[int32]()}, nil)
	require.Error(t, err)
}

func TestEncodeRangeElementError(t *testing.T) {
	_, err := pgrange.EncodeRange[int32](failingCodec{}, pgrange.HalfOpen[int32](-1, 5), nil)
	require.ErrorIs(t, err, errBadElement)
	require.ErrorContains(t, err, "lower bound")

	_, err = pgrange.EncodeRange[int32](failingCodec{}, pgrange.HalfOpen[int32](1, -5), nil)
	require.ErrorIs(t, err, errBadElement)
	require.ErrorContains(t, err, "upper bound")

	// An unbounded side is never passed to the element codec.
	_, err = pgrange.EncodeRange[int32](failingCodec{}, pgrange.New(pgrange.Unbound[int32](), pgrange.Exclude[int32](5)), nil)
	require.NoError(t, err)
}

func TestDecodeRangeInt4(t *testing.T) {
	t.Parallel()

	tests := []struct {
		src      []byte
		expected pgrange.Range[int32]
	}{
		{[]byte{0, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 5}, pgrange.New(pgrange.Exclude[int32](4), pgrange.Exclude[int32](5))},
		{[]byte{2, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 5}, pgrange.HalfOpen[int32](4, 5)},
		{[]byte{4, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 5}, pgrange.New(pgrange.Exclude[int32](4), pgrange.Include[int32](5))},
		{[]byte{6, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 4, 0, 0, 0, 5}, pgrange.Closed[int32](4, 5)},
		{[]byte{8, 0, 0, 0, 4, 0, 0, 0, 5}, pgrange.LessThan[int32](5)},
		{[]byte{12, 0, 0, 0, 4, 0, 0, 0, 5}, pgrange.AtMost[int32](5)},
		{[]byte{16, 0, 0, 0, 4, 0, 0, 0, 4}, pgrange.New(pgrange.Exclude[int32](4), pgrange.Unbound[int32]())},
		{[]byte{18, 0, 0, 0, 4, 0, 0, 0, 4}, pgrange.AtLeast[int32](4)},
		{[]byte{24}, pgrange.Full[int32]()},
		{[]byte{1}, pgrange.Empty[int32]()},
		// Server internal bits are ignored.
		{[]byte{0x18 | 0x80}, pgrange.Full[int32]()},
	}

	for i, tt := range tests {
		r, err := pgrange.DecodeRange[int32](pgrange.Int4Codec{}, tt.src)
		require.NoErrorf(t, err, "%d", i)
		require.Equalf(t, tt.expected, r, "%d", i)
	}
}

func TestDecodeRangeFormatErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		src  []byte
	}{
		{"nil", nil},
		{"empty", []byte{}},
		{"missing lower", []byte{0x00}},
		{"missing upper", []byte{0x02, 0, 0, 0, 4, 0, 0, 0, 1}},
		{"short length", []byte{0x12, 0, 0}},
		{"short element", []byte{0x12, 0, 0, 0, 4, 0, 0}},
		{"null element", []byte{0x12, 0xff, 0xff, 0xff, 0xff}},
		{"trailing bytes", []byte{0x18, 0}},
		{"trailing bytes after upper", []byte{0x0c, 0, 0, 0, 4, 0, 0, 0, 5, 9}},
		{"trailing bytes after empty", []byte{0x01, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := pgrange.DecodeRange[int32](pgrange.Int4Codec{}, tt.src)
			var formatErr *pgrange.FormatError
			require.ErrorAs(t, err, &formatErr)
		})
	}
}

func TestDecodeRangeElementError(t *testing.T) {
	// The length word is consistent but int4 needs 4 bytes.
	_, err := pgrange.DecodeRange[int32](pgrange.Int4Codec{}, []byte{0x12, 0, 0, 0, 2, 0, 1})
	require.EqualError(t, err, "lower bound: invalid length for int4: 2")
	var formatErr *pgrange.FormatError
	require.False(t, errors.As(err, &formatErr))

	_, err = pgrange.DecodeRange[int32](failingCodec{}, []byte{0x0c, 0, 0, 0, 4, 0xff, 0xff, 0xff, 0xfe})
	require.ErrorIs(t, err, errBadElement)
	require.ErrorContains(t, err, "upper bound")
}

func TestReadRangeLeavesRest(t *testing.T) {
	buf, err := pgrange.Encode(pgrange.HalfOpen[int32](1, 5), nil)
	require.NoError(t, err)
	buf, err = pgrange.Encode(pgrange.AtMost[int32](7), buf)
	require.NoError(t, err)
	buf = append(buf, 0xde, 0xad)

	r1, rest, err := pgrange.ReadRange[int32](pgrange.Int4Codec{}, buf)
	require.NoError(t, err)
	require.Equal(t, pgrange.HalfOpen[int32](1, 5), r1)

	r2, rest, err := pgrange.ReadRange[int32](pgrange.Int4Codec{}, rest)
	require.NoError(t, err)
	require.Equal(t, pgrange.AtMost[int32](7), r2)
	require.Equal(t, []byte{0xde, 0xad}, rest)

	r3, rest, err := pgrange.ReadRange[int32](pgrange.Int4Codec{}, []byte{0x01, 0x18})
	require.NoError(t, err)
	require.True(t, r3.IsEmpty())
	require.Equal(t, []byte{0x18}, rest)
}

func TestDecodeRangeVariableWidth(t *testing.T) {
	src := []byte{0x04, 0, 0, 0, 0, 0, 0, 0, 2, 'z', 'z'}
	r, err := pgrange.DecodeRange[string](textCodec{}, src)
	require.NoError(t, err)
	require.Equal(t, pgrange.New(pgrange.Exclude(""), pgrange.Include("zz")), r)
}

func TestEncodeDecodeUnsupportedType(t *testing.T) {
	_, err := pgrange.Encode(pgrange.HalfOpen("a", "b"), nil)
	require.ErrorIs(t, err, pgrange.ErrUnsupportedType)

	_, err = pgrange.Decode[string]([]byte{0x18})
	require.ErrorIs(t, err, pgrange.ErrUnsupportedType)
}
