package tuple

import "github.com/funvibe/funtuple/pkg/typedesc"

// Select builds a new tuple whose slot k is a copy of t's slot ix[k].
// The whole index list is validated before the first transfer, so a
// failed Select moves nothing. Every reordering algorithm in this package
// funnels through Select, which keeps the cost at one transfer per output
// slot.
func Select(t Tuple, ix Indices) (Tuple, error) {
	if err := ix.Validate(t.Len()); err != nil {
		return Tuple{}, err
	}
	return selectSlots(t, ix), nil
}

// selectSlots is Select without validation. Every entry must be in range.
func selectSlots(t Tuple, ix Indices) Tuple {
	if len(ix) == 0 {
		return Tuple{}
	}
	out := make([]slot, len(ix))
	for k, i := range ix {
		transfer(&out[k], t.slots[i])
	}
	return Tuple{slots: out}
}

// PushFront returns a tuple with v prepended as slot 0. The new slot's
// element type is the dynamic type of v.
func PushFront(t Tuple, v any) Tuple {
	out := make([]slot, len(t.slots)+1)
	out[0] = slot{val: v, typ: typedesc.From(v)}
	for i := range t.slots {
		transfer(&out[i+1], t.slots[i])
	}
	return Tuple{slots: out}
}

// PushBack returns a tuple with v appended after the last slot. The new
// slot's element type is the dynamic type of v.
func PushBack(t Tuple, v any) Tuple {
	out := make([]slot, len(t.slots)+1)
	for i := range t.slots {
		transfer(&out[i], t.slots[i])
	}
	out[len(t.slots)] = slot{val: v, typ: typedesc.From(v)}
	return Tuple{slots: out}
}

// PopFront returns t without slot 0. Popping the empty tuple is an error.
func PopFront(t Tuple) (Tuple, error) {
	if t.Len() == 0 {
		return Tuple{}, &EmptyError{Op: "PopFront"}
	}
	return selectSlots(t, Ascending(t.Len())[1:]), nil
}

// PopBack returns t without its last slot. Popping the empty tuple is an
// error.
func PopBack(t Tuple) (Tuple, error) {
	if t.Len() == 0 {
		return Tuple{}, &EmptyError{Op: "PopBack"}
	}
	return selectSlots(t, Ascending(t.Len()-1)), nil
}

// Reverse returns t with its slot order reversed. The reversal is a
// single Select over the reversed identity list, one transfer per slot,
// not a chain of pops and appends.
func Reverse(t Tuple) Tuple {
	return selectSlots(t, Ascending(t.Len()).Reversed())
}

// Splat returns a tuple of count slots, each a copy of t's slot index.
// A count of zero or less yields the empty tuple without consulting
// index.
func Splat(t Tuple, index, count int) (Tuple, error) {
	return Select(t, Replicate(index, count))
}

// SortBy returns t with slots reordered so their element types satisfy
// less in non-decreasing order. The permutation is computed from type
// descriptors alone; slot values are never compared. Slots whose types
// compare equal keep their original relative order. A nil less panics.
func SortBy(t Tuple, less typedesc.Less) Tuple {
	if less == nil {
		panic("tuple: SortBy with nil ordering")
	}
	descs := t.Types()
	ix := Ascending(t.Len()).SortedBy(func(a, b int) bool {
		return less(descs[a], descs[b])
	})
	return selectSlots(t, ix)
}
