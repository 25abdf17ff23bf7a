package pgrange

import (
	"encoding/binary"
	"fmt"
	"math/big"

	"github.com/jackc/pgio"
	"github.com/jackc/pgx/v5/pgtype"
)

var big10 = big.NewInt(10)

// encodeNumeric appends n in the numeric binary format. Zero and whole numbers are written without trailing zero
// digits, the way PostgreSQL stores them.
func encodeNumeric(buf []byte, n pgtype.Numeric) ([]byte, error) {
	n.Valid = true
	if !n.NaN && n.InfinityModifier == pgtype.Finite {
		if n.Int == nil || n.Int.Sign() == 0 {
			var dscale int16
			if n.Exp < 0 {
				dscale = int16(-n.Exp)
			}
			buf = pgio.AppendInt16(buf, 0)
			buf = pgio.AppendInt16(buf, 0)
			buf = pgio.AppendInt16(buf, 0)
			return pgio.AppendInt16(buf, dscale), nil
		}
		if n.Exp >= 0 {
			n.Int, n.Exp = trimTrailingZeros(n.Int, n.Exp)
		}
	}
	return encodeElement(pgtype.NumericCodec{}, pgtype.NumericOID, buf, n)
}

func trimTrailingZeros(num *big.Int, exp int32) (*big.Int, int32) {
	num = new(big.Int).Set(num)
	quo := &big.Int{}
	rem := &big.Int{}
	for {
		quo.QuoRem(num, big10, rem)
		if rem.Sign() != 0 {
			return num, exp
		}
		num.Set(quo)
		exp++
	}
}

// decodeNumeric reads a numeric in binary format. src must hold exactly the digits its header announces.
func decodeNumeric(src []byte) (pgtype.Numeric, error) {
	if len(src) < 8 {
		return pgtype.Numeric{}, fmt.Errorf("numeric incomplete %v", src)
	}

	ndigits := int(binary.BigEndian.Uint16(src))
	sign := binary.BigEndian.Uint16(src[4:])
	dscale := int16(binary.BigEndian.Uint16(src[6:]))

	if sign == 0 || sign == 0x4000 {
		if len(src) != 8+ndigits*2 {
			return pgtype.Numeric{}, fmt.Errorf("invalid length for numeric with %d digits: %v", ndigits, len(src))
		}
		if allZeroDigits(src[8:]) {
			n := pgtype.Numeric{Int: big.NewInt(0), Valid: true}
			if dscale > 0 {
				n.Exp = -int32(dscale)
			}
			return n, nil
		}
	}

	var n pgtype.Numeric
	if err := scanElement(pgtype.NumericCodec{}, pgtype.NumericOID, src, &n); err != nil {
		return pgtype.Numeric{}, err
	}
	return n, nil
}

func allZeroDigits(digits []byte) bool {
	for _, b := range digits {
		if b != 0 {
			return false
		}
	}
	return true
}
