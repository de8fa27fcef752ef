package utils

type Index []int

func NewRange(rmin, rmax int) (r Index) {
	var (
		size = rmax - rmin + 1 // INCLUSIVE RANGE
	)
	if size < 0 {
		size = 0
	}
	r = make(Index, size)
	for i := range r {
		r[i] = i + rmin
	}
	return
}

// NewSpan is the half open range [rmin, rmax).
func NewSpan(rmin, rmax int) (r Index) {
	return NewRange(rmin, rmax-1)
}

func NewConst(N, val int) (r Index) {
	r = make(Index, N)
	for i := range r {
		r[i] = val
	}
	return
}

// DropFirst and DropLast never fail on an empty index.
func (I Index) DropFirst() Index {
	if len(I) == 0 {
		return I
	}
	return I[1:]
}

func (I Index) DropLast() Index {
	if len(I) == 0 {
		return I
	}
	return I[:len(I)-1]
}
