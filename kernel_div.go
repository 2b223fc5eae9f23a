package cmparith

// divModKernel implements restoring long division, producing both the
// quotient and remainder in one pass: for rhs == 0 it fails with
// ErrDivisionByZero; for lhs == 0 it returns (0, 0); otherwise both
// operands are projected to their absolute value and the quotient bits
// are recovered from the most significant bit of the numerator down to
// the least.
//
// The quotient and remainder are both computed on absolute values, then
// sign-corrected independently: the quotient takes the sign implied by
// lhs and rhs (negative iff they differ), and the remainder takes the
// sign of lhs (or stays zero). This is truncated-toward-zero division —
// the same convention Go's own / and % operators use — and is the only
// choice that keeps quotient*rhs + remainder == lhs an exact identity
// rather than one holding only up to the remainder's sign. The original
// source's Div_Mod never sign-corrects the remainder at all, which
// breaks that identity whenever lhs is negative; we deviate from it
// here — see DESIGN.md.
func divModKernel(lhs, rhs Integer) (quotient, remainder Integer, err error) {
	if rhs.IsZero() {
		return Integer{}, Integer{}, ErrDivisionByZero
	}

	resultWidth := maxWidth(lhs.width, rhs.width)

	if lhs.IsZero() {
		z := Zero(resultWidth)
		return z, z, nil
	}

	signQuot := signBit(lhs.words) == signBit(rhs.words)
	signRem := signBit(lhs.words)
	actual := resultActual(lhs, rhs)

	numerator := Integer{width: resultWidth, words: normalizeTo(positiveProjection(lhs).words, actual)}
	denominator := Integer{width: resultWidth, words: normalizeTo(positiveProjection(rhs).words, actual)}

	quotient = Integer{width: resultWidth, words: zeroWords(actual)}
	remainder = Integer{width: resultWidth, words: zeroWords(actual)}

	numeratorMsb := msbIndex(numerator.words)
	for p := numeratorMsb; p >= 0; p-- {
		shiftLeft1(remainder.words)
		setBitAt(remainder.words, 0, bitAt(numerator.words, p))

		diff, _, _ := subKernel(remainder, denominator)
		if !signBit(diff.words) {
			remainder = diff
			setBitAt(quotient.words, p, true)
		}
	}

	if !signQuot {
		quotient = negateKernel(quotient)
	}
	if signRem {
		remainder = negateKernel(remainder)
	}
	return quotient, remainder, nil
}
