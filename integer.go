package cmparith

import "bytes"

// Integer is a signed integer parameterized by a Width. Values are
// immutable with respect to every method below except Inc and Dec,
// which rebind the receiver in place; every other operation returns a
// fresh value. A value's word vector is owned exclusively by it: copies
// are always deep.
type Integer struct {
	width Width
	words []byte // little-endian across words and within each word
}

// Width returns the width tag of x.
func (x Integer) Width() Width { return x.width }

// Zero returns the zero value of the given width.
func Zero(width Width) Integer {
	return Integer{width: width, words: zeroWords(minActual(width))}
}

// minActual returns the minimum actual word count for width w: w.Words()
// for Fixed, WidthMin for Unlimited.
func minActual(w Width) int {
	if w.IsFixed() {
		return w.Words()
	}
	return WidthMin
}

func oneOf(w Width) Integer {
	z := Zero(w)
	setBitAt(z.words, 0, true)
	return z
}

func twoOf(w Width) Integer {
	z := Zero(w)
	setBitAt(z.words, 1, true)
	return z
}

func tenOf(w Width) Integer {
	z := Zero(w)
	setBitAt(z.words, 1, true)
	setBitAt(z.words, 3, true)
	return z
}

// IsZero reports whether x is the zero value: every stored bit is 0.
func (x Integer) IsZero() bool {
	for _, w := range x.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether x and y denote the same mathematical value,
// regardless of their widths: if their signs differ they are unequal,
// otherwise both are normalized to the common result width and actual
// width and their bit strings are compared.
func (x Integer) Equal(y Integer) bool {
	if signBit(x.words) != signBit(y.words) {
		return false
	}
	actual := resultActual(x, y)
	return bytes.Equal(normalizeTo(x.words, actual), normalizeTo(y.words, actual))
}

// NotEqual is the complement of Equal.
func (x Integer) NotEqual(y Integer) bool { return !x.Equal(y) }

// Widen returns x reinterpreted at width to, sign-extending as needed.
// It is the only permitted cross-width copy/assignment: narrowing (to a
// width that cannot represent every value x's width can) is rejected at
// runtime, since Go has no compile-time equivalent of the static_assert
// the original source uses to reject it at the type level.
func (x Integer) Widen(to Width) (Integer, error) {
	if !widthAssignable(x.width, to) {
		return Integer{}, Error.New("cannot assign width %s to narrower width %s", x.width, to)
	}
	return x.withWidth(to), nil
}

// widthAssignable reports whether a value of width from may be assigned
// to a location of width to without narrowing: Unlimited may only widen
// into Unlimited, any Fixed may widen into Unlimited or an equal-or-wider
// Fixed.
func widthAssignable(from, to Width) bool {
	if from.IsUnlimited() {
		return to.IsUnlimited()
	}
	if to.IsUnlimited() {
		return true
	}
	return from.Words() <= to.Words()
}

// Neg returns the two's-complement negation of x.
func (x Integer) Neg() Integer {
	return negateKernel(x)
}

// Add returns x + y at width max(x.Width(), y.Width()). It returns an
// *OverflowError if the result's width is Fixed and the mathematical sum
// is not representable in it; the truncated result is still returned
// alongside the error.
func (x Integer) Add(y Integer) (Integer, error) {
	result, overflow, _ := addKernel(x, y)
	if overflow {
		return result, &OverflowError{Width: result.width, Truncated: result}
	}
	return result, nil
}

// Sub returns x - y, defined as x + (-y); overflow detection is
// inherited from Add.
func (x Integer) Sub(y Integer) (Integer, error) {
	return x.Add(y.Neg())
}

// Mul returns x * y at width max(x.Width(), y.Width()), via repeated
// shift-and-add. It returns an *OverflowError if the result's width is
// Fixed and the product is not representable in it. The check is made on
// the product's magnitude, so a product equal to the most negative value
// of the Fixed width is also reported as an overflow.
func (x Integer) Mul(y Integer) (Integer, error) {
	result, overflow := mulKernel(x, y)
	if overflow {
		return result, &OverflowError{Width: result.width, Truncated: result}
	}
	return result, nil
}

// Div returns the quotient of x / y. It returns an error wrapping
// ErrDivisionByZero if y is zero.
func (x Integer) Div(y Integer) (Integer, error) {
	q, _, err := divModKernel(x, y)
	return q, err
}

// Mod returns the remainder of x / y, satisfying Div(x,y)*y + Mod(x,y)
// == x up to width-normalized equality (see the documentation of
// divModKernel for the exact sign convention). It
// returns an error wrapping ErrDivisionByZero if y is zero.
func (x Integer) Mod(y Integer) (Integer, error) {
	_, r, err := divModKernel(x, y)
	return r, err
}

// DivMod returns both the quotient and remainder of x / y in one pass.
func (x Integer) DivMod(y Integer) (quotient, remainder Integer, err error) {
	return divModKernel(x, y)
}

// Inc rebinds x to x+1. On Fixed-width overflow x is left unchanged and
// the returned *OverflowError carries the truncated result that would
// have been assigned.
func (x *Integer) Inc() error {
	result, err := x.Add(oneOf(x.width))
	if err != nil {
		return err
	}
	*x = result
	return nil
}

// Dec rebinds x to x-1. On Fixed-width overflow x is left unchanged and
// the returned *OverflowError carries the truncated result that would
// have been assigned.
func (x *Integer) Dec() error {
	result, err := x.Sub(oneOf(x.width))
	if err != nil {
		return err
	}
	*x = result
	return nil
}
