/*
Package cmparith implements multi-precision signed integer arithmetic over
a two's-complement word vector.

An Integer is parameterized by a Width, which is either Fixed(n) — a
fixed n-byte-word machine integer with exact overflow semantics — or
Unlimited — an arbitrary-precision integer whose word vector grows and
shrinks as needed. Both share the same bit-level algorithms: the word
vector, bit indexing, sign-extension, and the ripple-carry add,
shift-and-add multiply, and restoring long division kernels run the
same bit loops for either width tag; only the add and multiply kernels'
post-processing (growing or shrinking an Unlimited result, flagging a
Fixed overflow) depends on it.

Values are immutable: every operator returns a fresh Integer rather than
modifying its receiver, except Inc and Dec, which rebind the receiver in
place. Operands of differing Width combine at width max(A, B), with
Unlimited dominating any Fixed(n):

	x := cmparith.Zero(cmparith.Fixed(4))
	y, _ := cmparith.New(cmparith.Unlimited, "123456789123456789123456789")
	sum, err := x.Add(y) // sum.Width() == cmparith.Unlimited

A Fixed-width operation whose mathematical result does not fit in its
width returns an *OverflowError carrying the truncated two's-complement
result the kernel actually produced; ErrDivisionByZero and
ErrFactorialOfNegative report the two precondition failures (division by
zero, factorial of a negative value) before any result exists.
*/
package cmparith
