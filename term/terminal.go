package term

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/skafara/cmparith"
)

// Terminal is a stateful REPL session bound to a single Width: every
// number it constructs, every result it banks, shares that width. It
// mirrors the role of MPTerm in the original front-end.
type Terminal struct {
	width  cmparith.Width
	out    io.Writer
	bank   bank
}

// New returns a Terminal of the given width writing its output to out.
func New(width cmparith.Width, out io.Writer) *Terminal {
	return &Terminal{width: width, out: out}
}

// Run drives the REPL loop over in, writing prompts, results, and
// "[ERROR] <message>" lines to the Terminal's output, until in reaches
// EOF or a line, trimmed of surrounding whitespace, is "exit". No error ever terminates the
// session early; it is always caught, reported, and the prompt
// reissued.
func (t *Terminal) Run(in io.Reader) {
	scanner := bufio.NewScanner(in)
	t.prompt()
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())

		if line == "" {
			t.prompt()
			continue
		}
		if line == "exit" {
			return
		}

		if err := t.exec(line); err != nil {
			// Classed errors print as "<class>: <message>"; only the
			// message is reported.
			msg := err.Error()
			if cause := errors.Unwrap(err); cause != nil {
				msg = cause.Error()
			}
			fmt.Fprintf(t.out, "[ERROR] %s\n", msg)
		}
		t.prompt()
	}
}

func (t *Terminal) exec(line string) error {
	command, err := parseCommand(line)
	if err != nil {
		return err
	}
	return command(t)
}

func (t *Terminal) prompt() {
	fmt.Fprint(t.out, "> ")
}

// resolve returns the Integer denoted by sym: either a bank placeholder
// ($1..$5) or a decimal literal parsed at the Terminal's width.
func (t *Terminal) resolve(sym string) (cmparith.Integer, error) {
	if strings.HasPrefix(sym, "$") {
		slot, _ := strconv.Atoi(sym[1:])
		return t.bank.get(slot)
	}
	result, err := cmparith.New(t.width, sym)
	if err != nil {
		return cmparith.Integer{}, err
	}
	return result, nil
}

// saveAndPrint banks result and prints it as the new $1.
func (t *Terminal) saveAndPrint(result cmparith.Integer) {
	t.bank.save(result)
	fmt.Fprintf(t.out, "$1 = %s\n", t.bank.latest().String())
}

// printBank lists every filled bank slot as "$k = <value>".
func (t *Terminal) printBank() {
	for i, result := range t.bank.results {
		fmt.Fprintf(t.out, "$%d = %s\n", i+1, result.String())
	}
}
