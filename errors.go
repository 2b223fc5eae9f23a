package cmparith

import "github.com/zeebo/errs"

// Error classes every ArithmeticError this package returns.
var Error = errs.Class("mparith")

// ErrDivisionByZero is returned by Div and Mod when the divisor is zero.
var ErrDivisionByZero = Error.New("Division By Zero")

// ErrFactorialOfNegative is returned by Factorial when the receiver is
// negative.
var ErrFactorialOfNegative = Error.New("Factorial Of Negative Number")

// OverflowError reports that a fixed-width operation produced a
// mathematically correct result too large to fit in the result's width.
// Truncated is the two's-complement result the kernel actually produced,
// fully constructed, before the overflow was detected.
type OverflowError struct {
	Width     Width
	Truncated Integer
}

func (e *OverflowError) Error() string {
	return "Overflow Detected [" + e.Truncated.String() + "]"
}
