package term

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skafara/cmparith"
)

func TestRunEchoesBinaryOperationResult(t *testing.T) {
	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	tm.Run(strings.NewReader("2+3\nexit\n"))

	require.Contains(t, out.String(), "$1 = 5")
}

func TestRunHandlesFactorial(t *testing.T) {
	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	tm.Run(strings.NewReader("5!\nexit\n"))

	require.Contains(t, out.String(), "$1 = 120")
}

func TestRunReportsInvalidCommandWithoutStopping(t *testing.T) {
	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	tm.Run(strings.NewReader("not a command\n2+2\nexit\n"))

	require.Contains(t, out.String(), "[ERROR] Invalid Command Format")
	require.Contains(t, out.String(), "$1 = 4")
}

func TestRunBankReferencesPreviousResult(t *testing.T) {
	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	tm.Run(strings.NewReader("10+5\n$1*2\nexit\n"))

	require.Contains(t, out.String(), "$1 = 15")
	require.Contains(t, out.String(), "$1 = 30")
}

func TestRunDivisionByZeroReported(t *testing.T) {
	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	tm.Run(strings.NewReader("5/0\nexit\n"))

	require.Contains(t, out.String(), "[ERROR] Division By Zero")
}

func TestRunStopsOnExit(t *testing.T) {
	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	tm.Run(strings.NewReader("exit\n99+1\n"))

	require.NotContains(t, out.String(), "$1 = 100")
}

func TestRunPrintsBankListing(t *testing.T) {
	var out bytes.Buffer
	tm := New(cmparith.Unlimited, &out)
	tm.Run(strings.NewReader("1+1\n2+2\nbank\nexit\n"))

	require.Contains(t, out.String(), "$1 = 4")
	require.Contains(t, out.String(), "$2 = 2")
}
