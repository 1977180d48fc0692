package tuple

import "reflect"

// Equal reports whether a and b hold equal slots. Two slots are equal
// when their declared element types are identical and their values are
// deeply equal. Comparing tuples of different lengths is a shape error,
// not inequality.
func Equal(a, b Tuple) (bool, error) {
	if a.Len() != b.Len() {
		return false, &LengthMismatchError{A: a.Len(), B: b.Len()}
	}
	for i := range a.slots {
		if !a.slots[i].typ.Equal(b.slots[i].typ) {
			return false, nil
		}
		if !valuesEqual(a.slots[i].val, b.slots[i].val) {
			return false, nil
		}
	}
	return true, nil
}

// valuesEqual compares two slot values. Deep equality avoids the panics
// that == raises on values with non-comparable dynamic types.
func valuesEqual(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return reflect.DeepEqual(a, b)
}
