package pgrange

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

const pgTimestampFormat = "2006-01-02 15:04:05.999999"

// Timestamp is a PostgreSQL timestamp without time zone. The location of Time is ignored when encoding; decoded
// values are in UTC.
type Timestamp struct {
	Time             time.Time
	InfinityModifier InfinityModifier
}

func (ts Timestamp) String() string {
	if ts.InfinityModifier != Finite {
		return ts.InfinityModifier.String()
	}
	return discardTimeZone(ts.Time).Format(pgTimestampFormat)
}

// TimestampValue implements the pgtype.TimestampValuer interface.
func (ts Timestamp) TimestampValue() (pgtype.Timestamp, error) {
	return pgtype.Timestamp{Time: ts.Time, InfinityModifier: pgtype.InfinityModifier(ts.InfinityModifier), Valid: true}, nil
}

// ScanTimestamp implements the pgtype.TimestampScanner interface.
func (ts *Timestamp) ScanTimestamp(v pgtype.Timestamp) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into %T", ts)
	}
	*ts = Timestamp{Time: v.Time, InfinityModifier: InfinityModifier(v.InfinityModifier)}
	return nil
}

func discardTimeZone(t time.Time) time.Time {
	if t.Location() != time.UTC {
		return time.Date(t.Year(), t.Month(), t.Day(), t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), time.UTC)
	}

	return t
}

// TimestampCodec is the element codec for Timestamp.
type TimestampCodec struct{}

func (TimestampCodec) EncodeBinary(buf []byte, v Timestamp) ([]byte, error) {
	if err := checkInfinityModifier(v.InfinityModifier); err != nil {
		return nil, err
	}
	return encodeElement(pgtype.TimestampCodec{}, pgtype.TimestampOID, buf, v)
}

func (TimestampCodec) DecodeBinary(src []byte) (Timestamp, error) {
	var ts Timestamp
	err := scanElement(pgtype.TimestampCodec{}, pgtype.TimestampOID, src, &ts)
	return ts, err
}
