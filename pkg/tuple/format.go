package tuple

import "fmt"

// String renders the tuple as "(v0, v1, ..., vn-1)" with each value
// formatted by %v. The empty tuple renders as "()".
func (t Tuple) String() string {
	result := "("
	for i, s := range t.slots {
		if i > 0 {
			result += ", "
		}
		result += fmt.Sprintf("%v", s.val)
	}
	result += ")"
	return result
}
