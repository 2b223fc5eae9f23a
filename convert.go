package cmparith

import "strings"

// New constructs an Integer of the given width from its decimal textual
// form: an optional leading '+' or '-' followed by one or more decimal
// digits. Callers are expected to pre-validate syntax (the regular
// expression 0|-?[1-9][0-9]* is the accepted grammar); New does not
// itself reject malformed input beyond what falls out of treating any
// non-digit byte past the optional sign as a bogus digit. If any
// intermediate multiply-by-ten or add overflows a Fixed width, New
// returns the truncated result alongside an *OverflowError.
func New(width Width, s string) (Integer, error) {
	result := Zero(width)

	negative := false
	digits := s
	if len(s) > 0 && (s[0] == '+' || s[0] == '-') {
		negative = s[0] == '-'
		digits = s[1:]
	}

	ten := tenOf(width)
	var overflow bool
	for i := 0; i < len(digits); i++ {
		scaled, mulOverflow := mulKernel(result, ten)
		var addOverflow bool
		result, addOverflow, _ = addKernel(scaled, digitOf(width, digits[i]))
		overflow = overflow || mulOverflow || addOverflow
	}

	if negative {
		result = negateKernel(result)
	}

	if overflow {
		return result, &OverflowError{Width: result.width, Truncated: result}
	}
	return result, nil
}

// digitOf returns the single-digit Integer value of decimal digit byte
// c at the given width.
func digitOf(width Width, c byte) Integer {
	z := Zero(width)
	v := c - '0'
	for i := 0; i < 4; i++ {
		if v&(1<<uint(i)) != 0 {
			setBitAt(z.words, i, true)
		}
	}
	return z
}

// String returns the minimal decimal serialization of x: "0" for zero,
// otherwise an optional '-' followed by digits with no leading zero.
// Encoding proceeds by repeated division by ten, exactly mirroring
// decoding's repeated multiply-by-ten.
func (x Integer) String() string {
	if x.IsZero() {
		return "0"
	}

	negative := signBit(x.words)
	// The magnitude is taken at Unlimited width, where the magnitude of a
	// Fixed width's most negative value is representable.
	rem := positiveProjection(x.withWidth(Unlimited))
	ten := tenOf(Unlimited)

	var digits []byte
	for !rem.IsZero() {
		q, r, _ := divModKernel(rem, ten)
		digits = append(digits, byte(r.words[0])+'0')
		rem = q
	}

	var b strings.Builder
	if negative {
		b.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		b.WriteByte(digits[i])
	}
	return b.String()
}
