package pgrange_test

import (
	"testing"
	"time"

	"github.com/jackc/pgrange"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTimestampCodec(t *testing.T) {
	tests := []struct {
		ts       pgrange.Timestamp
		expected []byte
	}{
		{pgrange.Timestamp{Time: time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)}, []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{pgrange.Timestamp{Time: time.Date(2000, 1, 1, 0, 0, 0, 1000, time.UTC)}, []byte{0, 0, 0, 0, 0, 0, 0, 1}},
		{pgrange.Timestamp{Time: time.Date(1999, 12, 31, 23, 59, 59, 999999000, time.UTC)}, []byte{0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{pgrange.Timestamp{InfinityModifier: pgrange.Infinity}, []byte{0x7f, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff, 0xff}},
		{pgrange.Timestamp{InfinityModifier: pgrange.NegativeInfinity}, []byte{0x80, 0, 0, 0, 0, 0, 0, 0}},
	}

	for i, tt := range tests {
		buf, err := pgrange.TimestampCodec{}.EncodeBinary(nil, tt.ts)
		require.NoErrorf(t, err, "%d", i)
		assert.Equalf(t, tt.expected, buf, "%d", i)

		got, err := pgrange.TimestampCodec{}.DecodeBinary(buf)
		require.NoErrorf(t, err, "%d", i)
		assert.Truef(t, tt.ts.Time.Equal(got.Time), "%d: expected %v, got %v", i, tt.ts.Time, got.Time)
		assert.Equalf(t, tt.ts.InfinityModifier, got.InfinityModifier, "%d", i)
	}
}

func TestTimestampCodecDiscardsTimeZone(t *testing.T) {
	local := pgrange.Timestamp{Time: time.Date(2000, 1, 1, 0, 0, 0, 0, time.FixedZone("", 3*60*60))}
	buf, err := pgrange.TimestampCodec{}.EncodeBinary(nil, local)
	require.NoError(t, err)
	assert.Equal(t, []byte{0, 0, 0, 0, 0, 0, 0, 0}, buf)

	got, err := pgrange.TimestampCodec{}.DecodeBinary(buf)
	require.NoError(t, err)
	assert.Equal(t, time.UTC, got.Time.Location())
}

func TestTimestampCodecErrors(t *testing.T) {
	_, err := pgrange.TimestampCodec{}.EncodeBinary(nil, pgrange.Timestamp{InfinityModifier: 3})
	require.Error(t, err)

	_, err = pgrange.TimestampCodec{}.DecodeBinary([]byte{0})
	require.EqualError(t, err, "invalid length for timestamp: 1")
}

func TestTsrange(t *testing.T) {
	r := pgrange.HalfOpen(
		pgrange.Timestamp{Time: time.Date(2020, 1, 2, 3, 4, 5, 6000, time.UTC)},
		pgrange.Timestamp{InfinityModifier: pgrange.Infinity},
	)
	buf, err := pgrange.Encode(r, nil)
	require.NoError(t, err)
	require.Len(t, buf, 1+12+12)

	got, err := pgrange.Decode[pgrange.Timestamp](buf)
	require.NoError(t, err)
	assert.Equal(t, r, got)
}
