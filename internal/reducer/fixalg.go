package reducer

import (
	"github.com/cubeforge/nxn/internal/alg"
	"github.com/cubeforge/nxn/internal/cube"
)

func parseFixAlg(s string) (alg.Algorithm, error) { return alg.Parse(s) }

func playAlg(c *cube.Cube, a alg.Algorithm) error { return alg.Play(c, a) }
