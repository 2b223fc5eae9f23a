package term

import (
	"fmt"
	"io"

	"github.com/skafara/cmparith"
)

// demo is one showcased operation: a human-readable label and a thunk
// that performs it and returns the formatted result line, or an error
// line if the operation fails (an overflow, most commonly — showcase
// exists specifically to surface those, not to hide them).
type demo struct {
	label string
	run   func() (string, error)
}

// RunShowcase prints a fixed sequence of representative operations
// across both a Fixed(32) width and Unlimited width to w: addition,
// subtraction, multiplication, division, modulo, factorial, and a
// deliberate Fixed(32) overflow. It is mode 3 of cmd/mpcalc, filling
// the gap the original front-end left for a non-interactive
// demonstration.
func RunShowcase(w io.Writer) {
	fmt.Fprintln(w, "== Fixed(32) ==")
	runDemos(w, fixedDemos())

	fmt.Fprintln(w, "== Unlimited ==")
	runDemos(w, unlimitedDemos())
}

func runDemos(w io.Writer, demos []demo) {
	for _, d := range demos {
		line, err := d.run()
		if err != nil {
			fmt.Fprintf(w, "%s: [ERROR] %s\n", d.label, err)
			continue
		}
		fmt.Fprintf(w, "%s: %s\n", d.label, line)
	}
}

func binOp(width cmparith.Width, a, b string, op func(x, y cmparith.Integer) (cmparith.Integer, error)) func() (string, error) {
	return func() (string, error) {
		x, err := cmparith.New(width, a)
		if err != nil {
			return "", err
		}
		y, err := cmparith.New(width, b)
		if err != nil {
			return "", err
		}
		result, err := op(x, y)
		if err != nil {
			return "", err
		}
		return result.String(), nil
	}
}

func fixedDemos() []demo {
	w := cmparith.Fixed(32)
	return []demo{
		{"2147483640 + 10", binOp(w, "2147483640", "10", cmparith.Integer.Add)},
		{"100 - 250", binOp(w, "100", "250", cmparith.Integer.Sub)},
		{"123456 * 789", binOp(w, "123456", "789", cmparith.Integer.Mul)},
		{"1000000 / 7", binOp(w, "1000000", "7", cmparith.Integer.Div)},
		{"1000000 % 7", binOp(w, "1000000", "7", cmparith.Integer.Mod)},
		{"20!", func() (string, error) {
			x, err := cmparith.New(w, "20")
			if err != nil {
				return "", err
			}
			result, err := x.Factorial()
			if err != nil {
				return "", err
			}
			return result.String(), nil
		}},
		{"57896044618658097711785492504343953926634992332820282019728792003956564819967 + 1 (overflow)", binOp(w, "57896044618658097711785492504343953926634992332820282019728792003956564819967", "1", cmparith.Integer.Add)},
	}
}

func unlimitedDemos() []demo {
	w := cmparith.Unlimited
	return []demo{
		{"123456789123456789 + 987654321987654321", binOp(w, "123456789123456789", "987654321987654321", cmparith.Integer.Add)},
		{"99999999999999999999 * 99999999999999999999", binOp(w, "99999999999999999999", "99999999999999999999", cmparith.Integer.Mul)},
		{"25!", func() (string, error) {
			x, err := cmparith.New(w, "25")
			if err != nil {
				return "", err
			}
			result, err := x.Factorial()
			if err != nil {
				return "", err
			}
			return result.String(), nil
		}},
	}
}
