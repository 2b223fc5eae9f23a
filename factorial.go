package cmparith

// Factorial returns x!. It fails with ErrFactorialOfNegative if x is
// negative. Overflow is latched across the whole iterative product; if
// any multiplication overflows a Fixed width, Factorial returns the
// truncated final product alongside an *OverflowError.
func (x Integer) Factorial() (Integer, error) {
	if signBit(x.words) {
		return Integer{}, ErrFactorialOfNegative
	}

	one := oneOf(x.width)
	if x.IsZero() || x.Equal(one) {
		return one, nil
	}

	result := x
	overflow := false
	for multiplier := twoOf(x.width); multiplier.NotEqual(x); {
		var ov bool
		result, ov = mulKernel(result, multiplier)
		overflow = overflow || ov
		multiplier, _, _ = addKernel(multiplier, one)
	}

	if overflow {
		return result, &OverflowError{Width: result.width, Truncated: result}
	}
	return result, nil
}
