package tuple

import (
	"fmt"
	"reflect"

	"github.com/funvibe/funtuple/pkg/typedesc"
)

// OutOfRangeError indicates a slot position outside a tuple's valid range.
type OutOfRangeError struct {
	Index  int
	Length int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("index %d out of range: tuple length %d", e.Index, e.Length)
}

// LengthMismatchError indicates two tuple shapes whose lengths disagree,
// such as comparing tuples of different arity or unpacking a tuple into
// the wrong number of slots.
type LengthMismatchError struct {
	A int
	B int
}

func (e *LengthMismatchError) Error() string {
	return fmt.Sprintf("tuple length mismatch: %d vs %d", e.A, e.B)
}

// EmptyError indicates a structural operation that is undefined on the
// empty tuple.
type EmptyError struct {
	Op string
}

func (e *EmptyError) Error() string {
	return fmt.Sprintf("%s: empty tuple", e.Op)
}

// SlotTypeError indicates a slot whose declared element type cannot be
// bound to the requested type.
type SlotTypeError struct {
	Index int
	Want  typedesc.Desc
	Got   typedesc.Desc
}

func (e *SlotTypeError) Error() string {
	return fmt.Sprintf("slot %d: type mismatch: %s vs %s", e.Index, e.Got, e.Want)
}

// NotFuncError indicates an apply target that cannot be invoked.
type NotFuncError struct {
	Got typedesc.Desc
}

func (e *NotFuncError) Error() string {
	if e.Got.Kind() == reflect.Func {
		return "apply: nil function"
	}
	return fmt.Sprintf("apply: not a function: %s", e.Got)
}

// ArgCountError indicates a callable whose parameter count cannot take
// the tuple's slots.
type ArgCountError struct {
	Want    int
	Got     int
	AtLeast bool // variadic callable: Want is a minimum
}

func (e *ArgCountError) Error() string {
	if e.AtLeast {
		return fmt.Sprintf("apply: expected at least %d arguments, got %d", e.Want, e.Got)
	}
	return fmt.Sprintf("apply: expected %d arguments, got %d", e.Want, e.Got)
}
