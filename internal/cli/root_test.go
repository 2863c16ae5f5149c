package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRootCommandsRegistered(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"solve", "twist", "verify", "show", "optimize", "serve"} {
		assert.True(t, names[want], "expected %q to be registered on rootCmd", want)
	}
}
