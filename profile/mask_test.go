package profile

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMaskEmail(t *testing.T) {
	require.Equal(t, "**@example.com", MaskEmail("ab@example.com"))
	require.Equal(t, "****", MaskEmail("none"))
	require.Equal(t, "@example.com", MaskEmail("@example.com"))
}

func TestMaskPhone(t *testing.T) {
	masked := MaskPhone("0901234567")
	require.Equal(t, "******4567", masked)
	require.Equal(t, strings.Repeat("*", 6), masked[:6])

	require.Equal(t, "4567", MaskPhone("4567"))
	require.Equal(t, "12", MaskPhone("12"))
}

func TestDisplayEmail_ToggleIsLossless(t *testing.T) {
	const email = "ab@example.com"
	var v Visibility

	require.False(t, v.Shown())
	require.Equal(t, "**@example.com", DisplayEmail(email, v))

	v = v.Toggle()
	require.Equal(t, email, DisplayEmail(email, v))

	v = v.Toggle()
	require.Equal(t, "**@example.com", DisplayEmail(email, v))
}

func TestDisplay_Placeholder(t *testing.T) {
	require.Equal(t, Placeholder, DisplayEmail("", Visibility{}))
	require.Equal(t, Placeholder, DisplayPhone("", Visibility{}.Toggle()))
	require.Equal(t, Placeholder, OrPlaceholder("  "))
	require.Equal(t, "Male", OrPlaceholder("Male"))
}
