package web

import "github.com/cubeforge/nxn/internal/solver3"

func solver3MethodFromName(name string) solver3.Method {
	if name == "beginner" {
		return solver3.Beginner
	}
	return solver3.CFOP
}
