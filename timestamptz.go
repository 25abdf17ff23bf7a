package pgrange

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const pgTimestamptzFormat = "2006-01-02 15:04:05.999999Z07:00"

// Timestamptz is a PostgreSQL timestamp with time zone that, unlike time.Time, can hold infinity and -infinity.
type Timestamptz struct {
	Time             time.Time
	InfinityModifier InfinityModifier
}

func (tstz Timestamptz) String() string {
	if tstz.InfinityModifier != Finite {
		return tstz.InfinityModifier.String()
	}
	return tstz.Time.Format(pgTimestamptzFormat)
}

// TimestamptzValue implements the pgtype.TimestamptzValuer interface.
func (tstz Timestamptz) TimestamptzValue() (pgtype.Timestamptz, error) {
	return pgtype.Timestamptz{Time: tstz.Time, InfinityModifier: pgtype.InfinityModifier(tstz.InfinityModifier), Valid: true}, nil
}

// ScanTimestamptz implements the pgtype.TimestamptzScanner interface.
func (tstz *Timestamptz) ScanTimestamptz(v pgtype.Timestamptz) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into %T", tstz)
	}
	*tstz = Timestamptz{Time: v.Time, InfinityModifier: InfinityModifier(v.InfinityModifier)}
	return nil
}

// TimestamptzCodec is the element codec for Timestamptz. Decoded values are in UTC.
type TimestamptzCodec struct{}

func (TimestamptzCodec) EncodeBinary(buf []byte, v Timestamptz) ([]byte, error) {
	if err := checkInfinityModifier(v.InfinityModifier); err != nil {
		return nil, err
	}
	return encodeElement(pgtype.TimestamptzCodec{}, pgtype.TimestamptzOID, buf, v)
}

func (TimestamptzCodec) DecodeBinary(src []byte) (Timestamptz, error) {
	var tstz Timestamptz
	if err := scanElement(pgtype.TimestamptzCodec{}, pgtype.TimestamptzOID, src, &tstz); err != nil {
		return Timestamptz{}, err
	}
	if tstz.InfinityModifier == Finite {
		tstz.Time = tstz.Time.UTC()
	}
	return tstz, nil
}

// TimeTimestamptzCodec is the element codec for time.Time as timestamptz. Decoded values are in UTC. Infinite
// timestamps cannot be represented and fail to decode; use Timestamptz for those.
type TimeTimestamptzCodec struct{}

func (TimeTimestamptzCodec) EncodeBinary(buf []byte, v time.Time) ([]byte, error) {
	return TimestamptzCodec{}.EncodeBinary(buf, Timestamptz{Time: v})
}

func (TimeTimestamptzCodec) DecodeBinary(src []byte) (time.Time, error) {
	tstz, err := TimestamptzCodec{}.DecodeBinary(src)
	if err != nil {
		return time.Time{}, err
	}
	if tstz.InfinityModifier != Finite {
		return time.Time{}, fmt.Errorf("cannot decode %v timestamptz into time.Time", tstz.InfinityModifier)
	}
	return tstz.Time, nil
}
