package term

import "github.com/skafara/cmparith"

// bankSize is the number of most-recent results the bank retains.
const bankSize = 5

// bank is a fixed 5-slot most-recent-first ring of results: $1 is always
// the most recently saved result, $5 the oldest still retained.
type bank struct {
	results []cmparith.Integer
}

// save pushes result to the front of the bank, evicting the oldest
// entry ($5) once the bank is full.
func (b *bank) save(result cmparith.Integer) {
	b.results = append([]cmparith.Integer{result}, b.results...)
	if len(b.results) > bankSize {
		b.results = b.results[:bankSize]
	}
}

// get returns the slot-th most recent result (1-indexed, so get(1) is
// the most recent). It returns a *BankRangeError if slot hasn't been
// filled yet.
func (b *bank) get(slot int) (cmparith.Integer, error) {
	if slot < 1 || slot > len(b.results) {
		return cmparith.Integer{}, &BankRangeError{Slot: slot}
	}
	return b.results[slot-1], nil
}

// latest returns the most recently saved result; it panics if the bank
// is empty, since it is only ever called immediately after save.
func (b *bank) latest() cmparith.Integer {
	return b.results[0]
}
