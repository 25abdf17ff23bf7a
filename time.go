package pgrange

import (
	"fmt"

	"github.com/jackc/pgx/v5/pgtype"
)

const microsecondsPerDay = 86400000000

// Time is a PostgreSQL time of day without time zone.
//
// Time is represented as the number of microseconds since midnight in the same way that PostgreSQL does. time.Time
// cannot be used because it would turn 24:00:00 into 00:00:00 of the following day.
type Time struct {
	Microseconds int64
}

// NewTime returns the time of day hour:minute:sec.usec.
func NewTime(hour, minute, sec, usec int) Time {
	return Time{Microseconds: (((int64(hour)*60+int64(minute))*60)+int64(sec))*1000000 + int64(usec)}
}

func (t Time) String() string {
	usec := t.Microseconds
	hours := usec / 3600000000
	usec -= hours * 3600000000
	minutes := usec / 60000000
	usec -= minutes * 60000000
	seconds := usec / 1000000
	usec -= seconds * 1000000

	if usec == 0 {
		return fmt.Sprintf("%02d:%02d:%02d", hours, minutes, seconds)
	}
	return fmt.Sprintf("%02d:%02d:%02d.%06d", hours, minutes, seconds, usec)
}

// TimeValue implements the pgtype.TimeValuer interface.
func (t Time) TimeValue() (pgtype.Time, error) {
	return pgtype.Time{Microseconds: t.Microseconds, Valid: true}, nil
}

// ScanTime implements the pgtype.TimeScanner interface.
func (t *Time) ScanTime(v pgtype.Time) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into %T", t)
	}
	*t = Time{Microseconds: v.Microseconds}
	return nil
}

// TimeCodec is the element codec for Time.
type TimeCodec struct{}

func (TimeCodec) EncodeBinary(buf []byte, v Time) ([]byte, error) {
	if v.Microseconds < 0 || v.Microseconds > microsecondsPerDay {
		return nil, fmt.Errorf("%d microseconds is outside the range of time", v.Microseconds)
	}
	return encodeElement(pgtype.TimeCodec{}, pgtype.TimeOID, buf, v)
}

func (TimeCodec) DecodeBinary(src []byte) (Time, error) {
	var t Time
	err := scanElement(pgtype.TimeCodec{}, pgtype.TimeOID, src, &t)
	return t, err
}
