package cmparith

import "fmt"

// WidthMin is the smallest number of words a Fixed width or an Unlimited
// value's word vector may have.
const WidthMin = 4

// Width tags an Integer as either a fixed number of 8-bit words or an
// arbitrary-precision value whose word vector grows and shrinks as
// needed. It stands in for the original implementation's compile-time
// width parameter: Go has no value-level generic that can also carry a
// distinguished "unlimited" tag alongside a runtime-selected width (the
// CLI's mode 2 picks 32 bytes at process start, not at compile time), so
// Width is carried at runtime inside every Integer instead.
type Width struct {
	n int32 // number of words for Fixed; unused (0) for Unlimited
	u bool  // true for Unlimited
}

// Unlimited is the arbitrary-precision width.
var Unlimited = Width{u: true}

// Fixed returns the width tag for a fixed n-word two's-complement
// integer. It panics if n < WidthMin, mirroring the static_assert the
// original source applies at template instantiation time.
func Fixed(n int) Width {
	if n < WidthMin {
		panic(fmt.Sprintf("cmparith: fixed width must be >= %d words, got %d", WidthMin, n))
	}
	return Width{n: int32(n)}
}

// IsUnlimited reports whether w is the Unlimited width.
func (w Width) IsUnlimited() bool { return w.u }

// IsFixed reports whether w is a Fixed(n) width.
func (w Width) IsFixed() bool { return !w.u }

// Words returns n for Fixed(n); it panics for Unlimited, which has no
// fixed word count (use Integer.actualWidth instead).
func (w Width) Words() int {
	if w.u {
		panic("cmparith: Unlimited width has no fixed word count")
	}
	return int(w.n)
}

func (w Width) String() string {
	if w.u {
		return "Unlimited"
	}
	return fmt.Sprintf("Fixed(%d)", w.n)
}

// maxWidth returns the result width for operands of width a and b:
// Unlimited if either is Unlimited, else Fixed(max(nA, nB)).
func maxWidth(a, b Width) Width {
	if a.u || b.u {
		return Unlimited
	}
	if a.n >= b.n {
		return a
	}
	return b
}
