package term

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skafara/cmparith"
)

func TestBankSaveAndGetMostRecentFirst(t *testing.T) {
	var b bank
	for _, n := range []string{"1", "2", "3"} {
		x, err := cmparith.New(cmparith.Unlimited, n)
		require.NoError(t, err)
		b.save(x)
	}

	v1, err := b.get(1)
	require.NoError(t, err)
	require.Equal(t, "3", v1.String())

	v3, err := b.get(3)
	require.NoError(t, err)
	require.Equal(t, "1", v3.String())
}

func TestBankEvictsOldestBeyondCapacity(t *testing.T) {
	var b bank
	for i := 1; i <= bankSize+2; i++ {
		x, err := cmparith.New(cmparith.Unlimited, intToDecimal(i))
		require.NoError(t, err)
		b.save(x)
	}

	require.Len(t, b.results, bankSize)

	_, err := b.get(bankSize + 1)
	require.Error(t, err)

	oldest, err := b.get(bankSize)
	require.NoError(t, err)
	require.Equal(t, "3", oldest.String())
}

func TestBankGetUnfilledSlotErrors(t *testing.T) {
	var b bank
	x, err := cmparith.New(cmparith.Unlimited, "1")
	require.NoError(t, err)
	b.save(x)

	_, err = b.get(2)
	require.Error(t, err)

	var rangeErr *BankRangeError
	require.ErrorAs(t, err, &rangeErr)
	require.Equal(t, 2, rangeErr.Slot)
}

func intToDecimal(n int) string {
	if n == 0 {
		return "0"
	}
	neg := n < 0
	if neg {
		n = -n
	}
	var digits []byte
	for n > 0 {
		digits = append(digits, byte('0'+n%10))
		n /= 10
	}
	out := make([]byte, 0, len(digits)+1)
	if neg {
		out = append(out, '-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		out = append(out, digits[i])
	}
	return string(out)
}
