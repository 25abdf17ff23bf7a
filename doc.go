// Package pgrange converts between Go range values and the PostgreSQL binary range format.
/*
The primary type is Range[T]. It is a pair of bounds, each of which is unbounded, inclusive, or exclusive, over an
element type T. Ranges are built directly from two bounds or with the helpers that mirror the common interval forms:

	pgrange.HalfOpen(1, 5)  // [1,5)
	pgrange.Closed(1, 5)    // [1,5]
	pgrange.AtLeast(3)      // [3,)
	pgrange.LessThan(10)    // (,10)
	pgrange.AtMost(10)      // (,10]

No ordering is enforced between the bounds and empty ranges are not normalized. String returns the PostgreSQL range
literal notation.

Binary Format

EncodeRange and DecodeRange convert between a Range[T] and the format PostgreSQL's range_send produces: a flag byte
followed by each present bound as a 4-byte length and the element's own binary format. The element format is supplied
by an ElementCodec[T]. Codecs for bool, the integer and float types, shopspring and apd decimals, Date, Time,
Timestamp, Timestamptz and time.Time are included and are found automatically by Encode and Decode. MapCodec delegates
to any codec registered in a pgx pgtype.Map.

Empty Ranges

PostgreSQL sends an empty range as a lone flag byte with the empty bit set. It is decoded to Empty[T](), which is
(zero,zero): a range that excludes both ends of a single point. Encoding Empty[T]() writes those two bounds and the
server normalizes them back to empty.

Type Table

Types lists which PostgreSQL range and range array type names each supported Go element type maps to. Ranges of bool,
int8, int16, float32, float64 and Time have no built-in PostgreSQL type and must be created on the server, e.g.

	CREATE TYPE float8range AS RANGE (subtype = float8);

Compatible checks a pgtype.Type against an element type.

pgx Integration

Range[T] implements pgtype.RangeValuer and *Range[T] implements pgtype.RangeScanner so ranges can be used directly as
query arguments and scan targets with pgx. LoadTypes registers custom range types loaded from the server and
RegisterDefaultPgTypes registers Range[T] as the default PostgreSQL type for its element type.
*/
package pgrange
