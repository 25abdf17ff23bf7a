package pgrange

import (
	"fmt"
	"math/big"

	"github.com/cockroachdb/apd"
	"github.com/jackc/pgx/v5/pgtype"
)

// APDCodec is the element codec for github.com/cockroachdb/apd decimals. NaN and the infinities map to the
// corresponding apd forms.
type APDCodec struct{}

func (APDCodec) EncodeBinary(buf []byte, v apd.Decimal) ([]byte, error) {
	switch v.Form {
	case apd.NaN, apd.NaNSignaling:
		return encodeNumeric(buf, pgtype.Numeric{NaN: true})
	case apd.Infinite:
		if v.Negative {
			return encodeNumeric(buf, pgtype.Numeric{InfinityModifier: pgtype.NegativeInfinity})
		}
		return encodeNumeric(buf, pgtype.Numeric{InfinityModifier: pgtype.Infinity})
	case apd.Finite:
	default:
		return nil, fmt.Errorf("unknown apd form: %v", v.Form)
	}

	n := new(big.Int).Set(&v.Coeff)
	if v.Negative {
		n.Neg(n)
	}
	return encodeNumeric(buf, pgtype.Numeric{Int: n, Exp: v.Exponent})
}

func (APDCodec) DecodeBinary(src []byte) (apd.Decimal, error) {
	n, err := decodeNumeric(src)
	if err != nil {
		return apd.Decimal{}, err
	}

	var d apd.Decimal
	switch {
	case n.NaN:
		d.Form = apd.NaN
	case n.InfinityModifier == pgtype.Infinity:
		d.Form = apd.Infinite
	case n.InfinityModifier == pgtype.NegativeInfinity:
		d.Form = apd.Infinite
		d.Negative = true
	default:
		d.Coeff.Abs(n.Int)
		d.Negative = n.Int.Sign() < 0
		d.Exponent = n.Exp
	}
	return d, nil
}
