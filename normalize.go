package cmparith

// normalizeTo returns words resized to targetLen words: when growing, it
// sign-extends with 0x00 if the value is non-negative or 0xFF if it is
// negative; when shrinking, it keeps the low targetLen words (used by
// the multiply kernel to shrink an Unlimited result). If words is
// already targetLen long, it is returned unchanged (no copy).
func normalizeTo(words []byte, targetLen int) []byte {
	if len(words) == targetLen {
		return words
	}

	fill := byte(0x00)
	if signBit(words) {
		fill = 0xFF
	}

	out := make([]byte, targetLen)
	copy(out, words)
	for i := len(words); i < targetLen; i++ {
		out[i] = fill
	}
	return out
}

// actualWidth returns the number of words backing x: Width() for Fixed,
// len(x.words) for Unlimited.
func (x Integer) actualWidth() int {
	if x.width.IsFixed() {
		return x.width.Words()
	}
	return len(x.words)
}

// resultActual returns the common actual width two operands must be
// normalized to before a bitwise algorithm can combine them: the max of
// their individual actual widths.
func resultActual(a, b Integer) int {
	na, nb := a.actualWidth(), b.actualWidth()
	if na >= nb {
		return na
	}
	return nb
}

// withWidth returns x normalized to width w at the actual width w
// itself requires (w.Words() for Fixed, max(actualWidth, WidthMin) for
// Unlimited). The result owns a fresh copy of the word vector.
func (x Integer) withWidth(w Width) Integer {
	var target int
	if w.IsFixed() {
		target = w.Words()
	} else {
		target = x.actualWidth()
		if target < WidthMin {
			target = WidthMin
		}
	}
	return Integer{width: w, words: cloneWords(normalizeTo(x.words, target))}
}
