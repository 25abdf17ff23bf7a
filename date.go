package pgrange

import (
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgtype"
)

// Date is a PostgreSQL date. Only the year, month and day of Time are used.
type Date struct {
	Time             time.Time
	InfinityModifier InfinityModifier
}

// NewDate returns the date at midnight UTC of the given day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{Time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

func (d Date) String() string {
	if d.InfinityModifier != Finite {
		return d.InfinityModifier.String()
	}
	return d.Time.Format("2006-01-02")
}

// DateValue implements the pgtype.DateValuer interface.
func (d Date) DateValue() (pgtype.Date, error) {
	return pgtype.Date{Time: d.Time, InfinityModifier: pgtype.InfinityModifier(d.InfinityModifier), Valid: true}, nil
}

// ScanDate implements the pgtype.DateScanner interface.
func (d *Date) ScanDate(v pgtype.Date) error {
	if !v.Valid {
		return fmt.Errorf("cannot scan NULL into %T", d)
	}
	*d = Date{Time: v.Time, InfinityModifier: InfinityModifier(v.InfinityModifier)}
	return nil
}

// DateCodec is the element codec for Date.
type DateCodec struct{}

func (DateCodec) EncodeBinary(buf []byte, v Date) ([]byte, error) {
	if err := checkInfinityModifier(v.InfinityModifier); err != nil {
		return nil, err
	}
	return encodeElement(pgtype.DateCodec{}, pgtype.DateOID, buf, v)
}

func (DateCodec) DecodeBinary(src []byte) (Date, error) {
	var d Date
	err := scanElement(pgtype.DateCodec{}, pgtype.DateOID, src, &d)
	return d, err
}
