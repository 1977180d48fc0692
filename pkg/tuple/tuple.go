// Package tuple implements a fixed-arity heterogeneous container.
//
// A Tuple holds an ordered, fixed number of slots, each slot carrying one
// value together with the element type it was declared with. Operations
// never mutate their inputs: every structural algorithm builds a fresh
// tuple and moves slots through a single transfer point, so reordering a
// tuple of n slots costs exactly n slot transfers.
//
// The dynamic surface (Of, At, Select, Apply) reports shape and type
// violations as errors before any slot is moved. The generated fixed-arity
// surface (Of1..Of8, To1..To8, Apply1..Apply8) shifts those same checks to
// the compiler where the arity is known statically.
package tuple

import (
	"reflect"
	"sync/atomic"

	"github.com/funvibe/funtuple/pkg/typedesc"
)

//go:generate go run github.com/funvibe/funtuple/cmd/tuplegen -config tuplegen.yaml -out arity_gen.go

// slot pairs one value with its declared element type. The value's dynamic
// type is always assignable to the declared type.
type slot struct {
	val any
	typ typedesc.Desc
}

// Tuple is an immutable, ordered, fixed-length sequence of slots. The zero
// value is the empty tuple. Tuples are cheap to copy and safe to share
// across goroutines: slot storage is never written after construction.
type Tuple struct {
	slots []slot
}

// slotTransfers counts slot moves between containers. Constructing a slot
// from a raw value is not a transfer; moving an existing slot into a new
// tuple is.
var slotTransfers atomic.Uint64

// transfer moves one existing slot into dst.
func transfer(dst *slot, src slot) {
	*dst = src
	slotTransfers.Add(1)
}

// Of builds a tuple from values. Each slot's element type is the dynamic
// type of its value; a nil value yields the nil descriptor. Use the OfN
// constructors to keep a declared type that differs from the dynamic one.
func Of(values ...any) Tuple {
	if len(values) == 0 {
		return Tuple{}
	}
	slots := make([]slot, len(values))
	for i, v := range values {
		slots[i] = slot{val: v, typ: typedesc.From(v)}
	}
	return Tuple{slots: slots}
}

// Len returns the number of slots.
func (t Tuple) Len() int {
	return len(t.slots)
}

// At returns the value held in slot i.
func (t Tuple) At(i int) (any, error) {
	if i < 0 || i >= len(t.slots) {
		return nil, &OutOfRangeError{Index: i, Length: len(t.slots)}
	}
	return t.slots[i].val, nil
}

// TypeAt returns the declared element type of slot i.
func (t Tuple) TypeAt(i int) (typedesc.Desc, error) {
	if i < 0 || i >= len(t.slots) {
		return typedesc.Desc{}, &OutOfRangeError{Index: i, Length: len(t.slots)}
	}
	return t.slots[i].typ, nil
}

// Types returns the declared element types of all slots in order.
func (t Tuple) Types() []typedesc.Desc {
	if len(t.slots) == 0 {
		return nil
	}
	descs := make([]typedesc.Desc, len(t.slots))
	for i, s := range t.slots {
		descs[i] = s.typ
	}
	return descs
}

// Get returns the value in slot i as T. The slot's declared element type
// must be exactly T; a slot declared as a narrower type is not widened.
func Get[T any](t Tuple, i int) (T, error) {
	var zero T
	if i < 0 || i >= len(t.slots) {
		return zero, &OutOfRangeError{Index: i, Length: len(t.slots)}
	}
	s := t.slots[i]
	want := typedesc.Of[T]()
	if !s.typ.Equal(want) {
		return zero, &SlotTypeError{Index: i, Want: want, Got: s.typ}
	}
	if s.val == nil {
		return zero, nil
	}
	return s.val.(T), nil
}

// as returns the value in slot i bound to T under assignability rules,
// the binding apply uses for arguments. The index must be in range.
func as[T any](t Tuple, i int) (T, error) {
	var zero T
	s := t.slots[i]
	want := typedesc.Of[T]()
	if !s.typ.AssignableTo(want) {
		return zero, &SlotTypeError{Index: i, Want: want, Got: s.typ}
	}
	if s.val == nil {
		return zero, nil
	}
	if v, ok := s.val.(T); ok {
		return v, nil
	}
	// Assignable but not identical, e.g. an unnamed slice bound to a named
	// slice parameter. Assertion requires identity; assignment does not.
	out := reflect.New(want.Reflect()).Elem()
	out.Set(reflect.ValueOf(s.val))
	return out.Interface().(T), nil
}
