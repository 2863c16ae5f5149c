package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cubeforge/nxn/internal/solver3"
)

func TestSolver3MethodFromFlag(t *testing.T) {
	assert.Equal(t, solver3.Beginner, solver3MethodFromFlag("beginner"))
	assert.Equal(t, solver3.CFOP, solver3MethodFromFlag("cfop"))
	assert.Equal(t, solver3.CFOP, solver3MethodFromFlag(""))
}
