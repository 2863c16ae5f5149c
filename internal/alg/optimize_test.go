package alg

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestOptimize(t *testing.T) {
	cases := []struct {
		name     string
		input    string
		expected string
	}{
		{"doubling", "R R", "R2"},
		{"triple", "R R R", "R'"},
		{"quadruple cancels", "R R R R", ""},
		{"direct cancel", "R R'", ""},
		{"reverse cancel", "R' R", ""},
		{"double cancel", "R2 R2", ""},
		{"double plus single", "R2 R", "R'"},
		{"double plus counter", "R2 R'", "R"},
		{"no optimization possible", "R U R' U'", "R U R' U'"},
		{"mixed", "R R U U' F F F", "R2 F'"},
		{"different faces not combined", "R L", "R L"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			a, err := Parse(tc.input)
			require.NoError(t, err)
			got := Optimize(a).String()
			require.Equal(t, tc.expected, got)
		})
	}
}
