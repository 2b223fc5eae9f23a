package cmparith

// mulKernel implements the shift-and-add multiply described in the
// package specification: both operands are projected to their absolute
// value, normalized to the common result width and actual width (and,
// for Unlimited results, further widened to twice that actual width so
// intermediate carries cannot silently wrap), then combined by adding a
// shifting copy of the left operand into the result wherever the right
// operand's current low bit is set. The sign of the product is applied
// at the end.
func mulKernel(lhs, rhs Integer) (result Integer, overflow bool) {
	resultIsNonNeg := signBit(lhs.words) == signBit(rhs.words)

	resultWidth := maxWidth(lhs.width, rhs.width)
	actual := resultActual(lhs, rhs)

	// The loop below shifts left and right in place, so they must not
	// share a word vector with lhs or rhs.
	left := Integer{width: resultWidth, words: cloneWords(normalizeTo(positiveProjection(lhs).words, actual))}
	right := Integer{width: resultWidth, words: cloneWords(normalizeTo(positiveProjection(rhs).words, actual))}

	if resultWidth.IsUnlimited() {
		extended := 2 * actual
		left.words = normalizeTo(left.words, extended)
		right.words = normalizeTo(right.words, extended)
	}

	acc := Integer{width: resultWidth, words: zeroWords(len(left.words))}

	// lostHighBit records that a set bit has been shifted off the top of
	// left; any later addition then exceeds the width.
	var carryFlag, lostHighBit bool
	m := msbIndex(right.words)
	for i := 0; i <= m; i++ {
		if bitAt(right.words, 0) {
			var c bool
			acc, _, c = addKernel(acc, left)
			carryFlag = carryFlag || c || lostHighBit
		}
		lostHighBit = lostHighBit || signBit(left.words)
		shiftLeft1(left.words)
		shiftRight1(right.words)
	}

	if resultWidth.IsFixed() {
		if carryFlag || signBit(acc.words) {
			overflow = true
		}
	}

	if resultWidth.IsUnlimited() {
		msb := msbIndex(acc.words)
		size := (msb + 2 + bitsPerWord - 1) / bitsPerWord
		if size < WidthMin {
			size = WidthMin
		}
		acc.words = normalizeTo(acc.words, size)
	}

	if resultIsNonNeg {
		return acc, overflow
	}
	return negateKernel(acc), overflow
}
