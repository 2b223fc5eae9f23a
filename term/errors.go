// Package term implements the interactive front-end consuming cmparith:
// the bank/binary-op/factorial command parser, a 5-slot result bank, the
// REPL loop, and a non-interactive showcase printer. None of this is
// part of the arithmetic engine itself — it only ever reaches cmparith
// through its public surface (construction from a string, the five
// operations, Factorial, and serialization).
package term

import "github.com/zeebo/errs"

// Error classes every error this package returns.
var Error = errs.Class("term")

// ErrInvalidCommand is returned when a line matches neither the bank
// command, a binary operation, nor a factorial expression.
var ErrInvalidCommand = Error.New("Invalid Command Format")

// BankRangeError reports that a $k placeholder refers to a bank slot
// that hasn't been filled yet.
type BankRangeError struct {
	Slot int
}

func (e *BankRangeError) Error() string {
	return "Out Of Bank Range"
}
