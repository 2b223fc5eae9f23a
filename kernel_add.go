package cmparith

// addKernel implements the ripple-carry add described in the package
// specification: both operands are normalized to the common result
// width and actual width, then combined bit by bit with the standard
// full-adder recurrence. It reports both a Fixed-width overflow flag
// (same-signed operands producing an opposite-signed result) and the
// final carry out of the top bit; Unlimited results instead grow by one
// word whenever the naive result's sign bit misrepresents same-signed
// operands.
func addKernel(lhs, rhs Integer) (result Integer, overflow, carry bool) {
	resultWidth := maxWidth(lhs.width, rhs.width)
	actual := resultActual(lhs, rhs)

	left := normalizeTo(lhs.words, actual)
	right := normalizeTo(rhs.words, actual)
	out := zeroWords(actual)

	c := false
	for i := 0; i < actual*bitsPerWord; i++ {
		l, r := bitAt(left, i), bitAt(right, i)
		setBitAt(out, i, (l != r) != c)
		c = (l && r) || ((l != r) && c)
	}

	lhsPos, rhsPos, resPos := !signBit(left), !signBit(right), !signBit(out)

	if resultWidth.IsUnlimited() {
		switch {
		case lhsPos && rhsPos && !resPos:
			out = append(out, 0x00)
		case !lhsPos && !rhsPos && resPos:
			out = append(out, 0xFF)
		}
	}

	if resultWidth.IsFixed() {
		if (lhsPos && rhsPos && !resPos) || (!lhsPos && !rhsPos && resPos) {
			overflow = true
		}
	}

	if c {
		carry = true
	}

	return Integer{width: resultWidth, words: out}, overflow, carry
}

// negateKernel returns the two's-complement negation of x: inverse(x) +
// 1, with the add kernel's overflow and carry flags discarded (negation
// itself never reports overflow; only the operation that uses it can).
func negateKernel(x Integer) Integer {
	inv := Integer{width: x.width, words: invert(x.words)}
	result, _, _ := addKernel(inv, oneOf(x.width))
	return result
}

// subKernel returns lhs - rhs, defined as lhs + negate(rhs); overflow
// detection is inherited entirely from addKernel.
func subKernel(lhs, rhs Integer) (result Integer, overflow, carry bool) {
	return addKernel(lhs, negateKernel(rhs))
}

// positiveProjection returns x if it is already non-negative, or its
// two's-complement negation otherwise. Used by multiply and divide to
// work on absolute values.
func positiveProjection(x Integer) Integer {
	if !signBit(x.words) {
		return x
	}
	return negateKernel(x)
}
