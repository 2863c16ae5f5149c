package alg

// Optimize combines consecutive atomic moves on the same face/slice/axis
// into a single turn and drops runs that cancel to identity, the same
// three rules as a 3x3 move optimizer generalized to every Atomic shape:
// combine (R R -> R2), cancel (R R' -> nothing, R2 R2 -> nothing), and
// reduce (R2 R -> R', R2 R' -> R). Moves are combinable only when they
// share every field except N - two SlicedFaceAlg moves on different
// slice sets, for instance, are never merged.
func Optimize(a Algorithm) Algorithm {
	flat := a.Flatten()
	if len(flat) == 0 {
		return Sequence{}
	}

	out := make([]Atomic, 0, len(flat))
	for _, cur := range flat {
		if len(out) == 0 {
			out = append(out, cur)
			continue
		}
		last := out[len(out)-1]
		combined, ok := combine(last, cur)
		if !ok {
			out = append(out, cur)
			continue
		}
		if combined == nil {
			out = out[:len(out)-1]
			continue
		}
		out[len(out)-1] = combined
	}

	items := make([]Algorithm, len(out))
	for i, atom := range out {
		items[i] = One{atom}
	}
	return Sequence{Algs: items}
}

// combine reports whether a and b turn the same layer set, and if so
// returns their merged move (nil meaning the pair cancels to identity).
func combine(a, b Atomic) (Atomic, bool) {
	switch x := a.(type) {
	case FaceAlg:
		y, ok := b.(FaceAlg)
		if !ok || y.Face != x.Face {
			return nil, false
		}
		return foldN(x.N, y.N, func(n int) Atomic { return FaceAlg{x.Face, n} }), true
	case SlicedFaceAlg:
		y, ok := b.(SlicedFaceAlg)
		if !ok || y.Face != x.Face || !sameInts(x.Slices, y.Slices) {
			return nil, false
		}
		return foldN(x.N, y.N, func(n int) Atomic { return SlicedFaceAlg{x.Face, n, x.Slices} }), true
	case SliceAlg:
		y, ok := b.(SliceAlg)
		if !ok || y.Slice != x.Slice {
			return nil, false
		}
		return foldN(x.N, y.N, func(n int) Atomic { return SliceAlg{x.Slice, n} }), true
	case SlicedSliceAlg:
		y, ok := b.(SlicedSliceAlg)
		if !ok || y.Slice != x.Slice || !sameInts(x.Indices, y.Indices) {
			return nil, false
		}
		return foldN(x.N, y.N, func(n int) Atomic { return SlicedSliceAlg{x.Slice, n, x.Indices} }), true
	case DoubleLayerAlg:
		y, ok := b.(DoubleLayerAlg)
		if !ok || y.Face != x.Face {
			return nil, false
		}
		return foldN(x.N, y.N, func(n int) Atomic { return DoubleLayerAlg{x.Face, n} }), true
	case WideFaceAlg:
		y, ok := b.(WideFaceAlg)
		if !ok || y.Face != x.Face || y.Depth != x.Depth {
			return nil, false
		}
		return foldN(x.N, y.N, func(n int) Atomic { return WideFaceAlg{x.Face, n, x.Depth} }), true
	case WholeCubeAlg:
		y, ok := b.(WholeCubeAlg)
		if !ok || y.Axis != x.Axis {
			return nil, false
		}
		return foldN(x.N, y.N, func(n int) Atomic { return WholeCubeAlg{x.Axis, n} }), true
	}
	return nil, false
}

// foldN reduces two quarter-turn counts mod 4 and rebuilds an Atomic via
// make, or returns nil if they cancel to identity.
func foldN(a, b int, make func(int) Atomic) Atomic {
	turns := ((a+b)%4 + 4) % 4
	if turns == 0 {
		return nil
	}
	return make(turns)
}

func sameInts(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}
