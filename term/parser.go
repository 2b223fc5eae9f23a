package term

import (
	"regexp"

	"github.com/skafara/cmparith"
)

// operand matches either a bank placeholder $1..$5 or a decimal literal
// in the grammar the core's textual I/O accepts: 0|-?[1-9][0-9]*.
const operand = `(?:\$[1-5]|0|-?[1-9][0-9]*)`

var (
	factorialPattern = regexp.MustCompile(`^(` + operand + `)!$`)
	binaryPattern    = regexp.MustCompile(`^(` + operand + `)\s*([+\-*/%])\s*(` + operand + `)$`)
)

// op is a parsed, not-yet-executed REPL command, mirroring the original
// front-end's Parse_Cmd, which returns a closure over the parsed
// operands rather than an intermediate AST node.
type op func(t *Terminal) error

// parseCommand recognizes the three command shapes the front-end
// accepts (bank listing, binary operation, factorial) and returns the
// unexecuted operation, or ErrInvalidCommand if line matches none of
// them. line is assumed already stripped of leading/trailing
// whitespace and non-empty.
func parseCommand(line string) (op, error) {
	if line == "bank" {
		return func(t *Terminal) error {
			t.printBank()
			return nil
		}, nil
	}

	if m := factorialPattern.FindStringSubmatch(line); m != nil {
		sym := m[1]
		return func(t *Terminal) error {
			x, err := t.resolve(sym)
			if err != nil {
				return err
			}
			result, err := x.Factorial()
			if err != nil {
				return err
			}
			t.saveAndPrint(result)
			return nil
		}, nil
	}

	if m := binaryPattern.FindStringSubmatch(line); m != nil {
		lhsSym, opSym, rhsSym := m[1], m[2], m[3]
		return func(t *Terminal) error {
			lhs, err := t.resolve(lhsSym)
			if err != nil {
				return err
			}
			rhs, err := t.resolve(rhsSym)
			if err != nil {
				return err
			}

			var result cmparith.Integer
			switch opSym {
			case "+":
				result, err = lhs.Add(rhs)
			case "-":
				result, err = lhs.Sub(rhs)
			case "*":
				result, err = lhs.Mul(rhs)
			case "/":
				result, err = lhs.Div(rhs)
			case "%":
				result, err = lhs.Mod(rhs)
			}
			if err != nil {
				return err
			}
			t.saveAndPrint(result)
			return nil
		}, nil
	}

	return nil, ErrInvalidCommand
}
