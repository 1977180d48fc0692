package tuple

// Indices is an ordered list of slot positions used to drive reordering.
// Entries may repeat and may appear in any order. Algorithms that consume
// an index list validate every entry against the source tuple before
// moving anything.
type Indices []int

// Ascending returns the identity list [0, 1, ..., n-1]. A length of zero
// or less yields an empty list.
func Ascending(n int) Indices {
	if n <= 0 {
		return nil
	}
	ix := make(Indices, n)
	for i := range ix {
		ix[i] = i
	}
	return ix
}

// Replicate returns a list holding count copies of index. A count of zero
// or less yields an empty list.
func Replicate(index, count int) Indices {
	if count <= 0 {
		return nil
	}
	ix := make(Indices, count)
	for i := range ix {
		ix[i] = index
	}
	return ix
}

// Reversed returns a fresh copy of ix with the entries in reverse order.
func (ix Indices) Reversed() Indices {
	if len(ix) == 0 {
		return nil
	}
	out := make(Indices, len(ix))
	for i, v := range ix {
		out[len(ix)-1-i] = v
	}
	return out
}

// SortedBy returns a fresh copy of ix ordered by less. The sort is a
// stable insertion sort: entries that compare equal keep their original
// relative order.
func (ix Indices) SortedBy(less func(a, b int) bool) Indices {
	if len(ix) == 0 {
		return nil
	}
	out := make(Indices, len(ix))
	copy(out, ix)
	for i := 1; i < len(out); i++ {
		for j := i; j > 0 && less(out[j], out[j-1]); j-- {
			out[j], out[j-1] = out[j-1], out[j]
		}
	}
	return out
}

// Validate reports the first entry that cannot address a slot of a tuple
// with the given length.
func (ix Indices) Validate(length int) error {
	for _, i := range ix {
		if i < 0 || i >= length {
			return &OutOfRangeError{Index: i, Length: length}
		}
	}
	return nil
}
