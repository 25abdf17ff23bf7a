package pgrange

import (
	"errors"

	"github.com/jackc/pgx/v5/pgtype"
	"github.com/shopspring/decimal"
)

var errDecimalNotFinite = errors.New("cannot decode non-finite numeric into decimal.Decimal")

// DecimalCodec is the element codec for github.com/shopspring/decimal values. decimal.Decimal cannot hold NaN or an
// infinity, so numrange bounds with those values fail to decode.
type DecimalCodec struct{}

func (DecimalCodec) EncodeBinary(buf []byte, v decimal.Decimal) ([]byte, error) {
	return encodeNumeric(buf, pgtype.Numeric{Int: v.Coefficient(), Exp: v.Exponent()})
}

func (DecimalCodec) DecodeBinary(src []byte) (decimal.Decimal, error) {
	n, err := decodeNumeric(src)
	if err != nil {
		return decimal.Decimal{}, err
	}
	if n.NaN || n.InfinityModifier != pgtype.Finite {
		return decimal.Decimal{}, errDecimalNotFinite
	}
	return decimal.NewFromBigInt(n.Int, n.Exp), nil
}
