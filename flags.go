package pgrange

// rangeFlags is the first byte of a binary range. Bit values follow src/include/utils/rangetypes.h.
type rangeFlags byte

const (
	emptyMask          rangeFlags = 0x01
	lowerInclusiveMask rangeFlags = 0x02
	upperInclusiveMask rangeFlags = 0x04
	lowerUnboundedMask rangeFlags = 0x08
	upperUnboundedMask rangeFlags = 0x10

	// Server internal. Never written and ignored when read.
	lowerNullMask    rangeFlags = 0x20
	upperNullMask    rangeFlags = 0x40
	containEmptyMask rangeFlags = 0x80
)

func (f rangeFlags) has(mask rangeFlags) bool {
	return f&mask == mask
}

func rangeFlagsFor(lower, upper BoundType) (rangeFlags, error) {
	var f rangeFlags

	switch lower {
	case Inclusive:
		f |= lowerInclusiveMask
	case Unbounded:
		f |= lowerUnboundedMask
	case Exclusive:
	default:
		return 0, unknownBoundTypeError("lower", lower)
	}

	switch upper {
	case Inclusive:
		f |= upperInclusiveMask
	case Unbounded:
		f |= upperUnboundedMask
	case Exclusive:
	default:
		return 0, unknownBoundTypeError("upper", upper)
	}

	return f, nil
}

// boundTypes expands f into the bound types it describes. It does not look at emptyMask.
func (f rangeFlags) boundTypes() (lower, upper BoundType) {
	switch {
	case f.has(lowerUnboundedMask):
		lower = Unbounded
	case f.has(lowerInclusiveMask):
		lower = Inclusive
	default:
		lower = Exclusive
	}

	switch {
	case f.has(upperUnboundedMask):
		upper = Unbounded
	case f.has(upperInclusiveMask):
		upper = Inclusive
	default:
		upper = Exclusive
	}

	return lower, upper
}

func (f rangeFlags) String() string {
	if f == 0 {
		return "none"
	}

	names := []struct {
		mask rangeFlags
		name string
	}{
		{emptyMask, "EMPTY"},
		{lowerInclusiveMask, "LB_INC"},
		{upperInclusiveMask, "UB_INC"},
		{lowerUnboundedMask, "LB_INF"},
		{upperUnboundedMask, "UB_INF"},
		{lowerNullMask, "LB_NULL"},
		{upperNullMask, "UB_NULL"},
		{containEmptyMask, "CONTAIN_EMPTY"},
	}

	var buf []byte
	for _, n := range names {
		if f.has(n.mask) {
			if len(buf) > 0 {
				buf = append(buf, '|')
			}
			buf = append(buf, n.name...)
		}
	}
	return string(buf)
}

// DescribeFlags returns the names of the flag bits set in the first byte of a binary range, e.g. "LB_INC|UB_INF".
func DescribeFlags(src []byte) (string, error) {
	if len(src) == 0 {
		return "", &FormatError{Msg: "range payload is empty"}
	}
	return rangeFlags(src[0]).String(), nil
}
