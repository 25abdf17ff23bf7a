package pgrange

import (
	"fmt"
	"reflect"
	"time"

	"github.com/cockroachdb/apd"
	"github.com/shopspring/decimal"
)

// PostgreSQL oids for range element types and the built-in range types
const (
	BoolOID        = 16
	QCharOID       = 18
	Int8OID        = 20
	Int2OID        = 21
	Int4OID        = 23
	Float4OID      = 700
	Float8OID      = 701
	DateOID        = 1082
	TimeOID        = 1083
	TimestampOID   = 1114
	TimestamptzOID = 1184
	NumericOID     = 1700

	Int4rangeOID      = 3904
	Int4rangeArrayOID = 3905
	NumrangeOID       = 3906
	NumrangeArrayOID  = 3907
	TsrangeOID        = 3908
	TsrangeArrayOID   = 3909
	TstzrangeOID      = 3910
	TstzrangeArrayOID = 3911
	DaterangeOID      = 3912
	DaterangeArrayOID = 3913
	Int8rangeOID      = 3926
	Int8rangeArrayOID = 3927
)

type InfinityModifier int8

const (
	Infinity         InfinityModifier = 1
	Finite           InfinityModifier = 0
	NegativeInfinity InfinityModifier = -Infinity
)

func (im InfinityModifier) String() string {
	switch im {
	case Finite:
		return "finite"
	case Infinity:
		return "infinity"
	case NegativeInfinity:
		return "-infinity"
	default:
		return "invalid"
	}
}

func checkInfinityModifier(im InfinityModifier) error {
	switch im {
	case Finite, Infinity, NegativeInfinity:
		return nil
	default:
		return fmt.Errorf("unknown infinity modifier: %v", int8(im))
	}
}

// TypeInfo describes how ranges of one Go element type map to PostgreSQL. An OID of 0 means the type is not built in
// and must be created on the server, e.g. CREATE TYPE float8range AS RANGE (subtype = float8).
type TypeInfo struct {
	GoType      reflect.Type
	ElementName string
	ElementOID  uint32
	RangeName   string
	RangeOID    uint32
	ArrayName   string
	ArrayOID    uint32

	codec      any
	rangeValue any
	arrayValue any
}

func typeInfo[T any](c ElementCodec[T], elementName string, elementOID uint32, rangeName string, rangeOID, arrayOID uint32) TypeInfo {
	return TypeInfo{
		GoType:      reflect.TypeOf((*T)(nil)).Elem(),
		ElementName: elementName,
		ElementOID:  elementOID,
		RangeName:   rangeName,
		RangeOID:    rangeOID,
		ArrayName:   "_" + rangeName,
		ArrayOID:    arrayOID,
		codec:       c,
		rangeValue:  Range[T]{},
		arrayValue:  []Range[T]{},
	}
}

var typeInfos = []TypeInfo{
	typeInfo[bool](BoolCodec{}, "bool", BoolOID, "boolrange", 0, 0),
	typeInfo[int8](Int1Codec{}, "char", QCharOID, "int1range", 0, 0),
	typeInfo[int16](Int2Codec{}, "int2", Int2OID, "int2range", 0, 0),
	typeInfo[int32](Int4Codec{}, "int4", Int4OID, "int4range", Int4rangeOID, Int4rangeArrayOID),
	typeInfo[int64](Int8Codec{}, "int8", Int8OID, "int8range", Int8rangeOID, Int8rangeArrayOID),
	typeInfo[float32](Float4Codec{}, "float4", Float4OID, "float4range", 0, 0),
	typeInfo[float64](Float8Codec{}, "float8", Float8OID, "float8range", 0, 0),
	typeInfo[decimal.Decimal](DecimalCodec{}, "numeric", NumericOID, "numrange", NumrangeOID, NumrangeArrayOID),
	typeInfo[apd.Decimal](APDCodec{}, "numeric", NumericOID, "numrange", NumrangeOID, NumrangeArrayOID),
	typeInfo[Date](DateCodec{}, "date", DateOID, "daterange", DaterangeOID, DaterangeArrayOID),
	typeInfo[Time](TimeCodec{}, "time", TimeOID, "timerange", 0, 0),
	typeInfo[Timestamp](TimestampCodec{}, "timestamp", TimestampOID, "tsrange", TsrangeOID, TsrangeArrayOID),
	typeInfo[time.Time](TimeTimestamptzCodec{}, "timestamptz", TimestamptzOID, "tstzrange", TstzrangeOID, TstzrangeArrayOID),
	typeInfo[Timestamptz](TimestamptzCodec{}, "timestamptz", TimestamptzOID, "tstzrange", TstzrangeOID, TstzrangeArrayOID),
}

var typeInfoByGoType map[reflect.Type]*TypeInfo

func init() {
	typeInfoByGoType = make(map[reflect.Type]*TypeInfo, len(typeInfos))
	for i := range typeInfos {
		typeInfoByGoType[typeInfos[i].GoType] = &typeInfos[i]
	}
}

// Types returns the type table in a fixed order.
func Types() []TypeInfo {
	out := make([]TypeInfo, len(typeInfos))
	copy(out, typeInfos)
	return out
}

// LookupType returns the type table entry for ranges of T.
func LookupType[T any]() (TypeInfo, bool) {
	ti, ok := typeInfoByGoType[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return TypeInfo{}, false
	}
	return *ti, true
}

// LookupRangeName returns the first type table entry whose range type is named name.
func LookupRangeName(name string) (TypeInfo, bool) {
	for _, ti := range typeInfos {
		if ti.RangeName == name {
			return ti, true
		}
	}
	return TypeInfo{}, false
}

// CodecFor returns the element codec the type table has for T.
func CodecFor[T any]() (ElementCodec[T], bool) {
	ti, ok := typeInfoByGoType[reflect.TypeOf((*T)(nil)).Elem()]
	if !ok {
		return nil, false
	}
	c, ok := ti.codec.(ElementCodec[T])
	return c, ok
}

// Encode appends the binary format of r to buf using the element codec from the type table.
func Encode[T any](r Range[T], buf []byte) ([]byte, error) {
	c, ok := CodecFor[T]()
	if !ok {
		return nil, fmt.Errorf("%w: %T", ErrUnsupportedType, r)
	}
	return EncodeRange(c, r, buf)
}

// Decode decodes a binary range using the element codec from the type table.
func Decode[T any](src []byte) (Range[T], error) {
	c, ok := CodecFor[T]()
	if !ok {
		return Range[T]{}, fmt.Errorf("%w: %T", ErrUnsupportedType, Range[T]{})
	}
	return DecodeRange(c, src)
}
