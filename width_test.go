package cmparith_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/skafara/cmparith"
)

func TestFixedPanicsBelowMinimum(t *testing.T) {
	require.Panics(t, func() { cmparith.Fixed(1) })
	require.NotPanics(t, func() { cmparith.Fixed(cmparith.WidthMin) })
}

func TestWidthString(t *testing.T) {
	require.Equal(t, "Unlimited", cmparith.Unlimited.String())
	require.Equal(t, "Fixed(4)", cmparith.Fixed(4).String())
}

func TestWidthIsFixedIsUnlimited(t *testing.T) {
	require.True(t, cmparith.Unlimited.IsUnlimited())
	require.False(t, cmparith.Unlimited.IsFixed())

	f := cmparith.Fixed(8)
	require.True(t, f.IsFixed())
	require.False(t, f.IsUnlimited())
	require.Equal(t, 8, f.Words())
}
