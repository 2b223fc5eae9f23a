package term

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skafara/cmparith"
)

func TestParseCommandRecognizesShapes(t *testing.T) {
	cases := []string{"bank", "1+1", "1 + 1", "-5*3", "$1/2", "7!"}
	for _, line := range cases {
		_, err := parseCommand(line)
		require.NoError(t, err, "line %q should parse", line)
	}
}

func TestParseCommandRejectsGarbage(t *testing.T) {
	cases := []string{"", "+1", "1+", "1**1", "1 ! 1", "hello"}
	for _, line := range cases {
		_, err := parseCommand(line)
		require.ErrorIs(t, err, ErrInvalidCommand, "line %q should be rejected", line)
	}
}

func TestParsedFactorialExecutesAgainstTerminal(t *testing.T) {
	command, err := parseCommand("4!")
	require.NoError(t, err)

	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	require.NoError(t, command(tm))
	require.Contains(t, out.String(), "$1 = 24")
}
