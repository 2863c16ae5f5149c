package web

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/cubeforge/nxn/internal/solver3"
)

func TestSolver3MethodFromName(t *testing.T) {
	assert.Equal(t, solver3.Beginner, solver3MethodFromName("beginner"))
	assert.Equal(t, solver3.CFOP, solver3MethodFromName("cfop"))
	assert.Equal(t, solver3.CFOP, solver3MethodFromName(""))
	assert.Equal(t, solver3.CFOP, solver3MethodFromName("nonsense"))
}
