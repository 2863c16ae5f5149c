package cli

import "github.com/cubeforge/nxn/internal/solver3"

// solver3MethodFromFlag maps the --method CLI flag to solver3.Method,
// defaulting to CFOP for anything other than an explicit "beginner".
func solver3MethodFromFlag(name string) solver3.Method {
	if name == "beginner" {
		return solver3.Beginner
	}
	return solver3.CFOP
}
