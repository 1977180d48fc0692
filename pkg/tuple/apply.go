package tuple

import (
	"reflect"

	"github.com/funvibe/funtuple/pkg/typedesc"
)

// Apply invokes fn with the tuple's slots spread as positional arguments,
// slot k bound to parameter k, and returns fn's results as a fresh tuple.
// Result slot types are fn's declared result types, not the dynamic types
// of the returned values. Every binding check runs before fn is invoked;
// a failed Apply never calls fn.
//
// Variadic callables bind the way a direct Go call does: fixed parameters
// take the leading slots and the variadic parameter gathers the rest,
// which may be empty.
func Apply(fn any, t Tuple) (Tuple, error) {
	if fn == nil {
		return Tuple{}, &NotFuncError{Got: typedesc.From(fn)}
	}
	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return Tuple{}, &NotFuncError{Got: typedesc.From(fn)}
	}
	if fv.IsNil() {
		return Tuple{}, &NotFuncError{Got: typedesc.Wrap(ft)}
	}

	n := t.Len()
	if ft.IsVariadic() {
		if n < ft.NumIn()-1 {
			return Tuple{}, &ArgCountError{Want: ft.NumIn() - 1, Got: n, AtLeast: true}
		}
	} else if n != ft.NumIn() {
		return Tuple{}, &ArgCountError{Want: ft.NumIn(), Got: n}
	}

	for i, s := range t.slots {
		want := typedesc.Wrap(paramType(ft, i))
		if !s.typ.AssignableTo(want) {
			return Tuple{}, &SlotTypeError{Index: i, Want: want, Got: s.typ}
		}
	}

	args := make([]reflect.Value, n)
	for i, s := range t.slots {
		if s.val == nil {
			args[i] = reflect.Zero(paramType(ft, i))
			continue
		}
		args[i] = reflect.ValueOf(s.val)
	}

	results := fv.Call(args)
	if len(results) == 0 {
		return Tuple{}, nil
	}
	out := make([]slot, len(results))
	for k, r := range results {
		out[k] = slot{val: r.Interface(), typ: typedesc.Wrap(ft.Out(k))}
	}
	return Tuple{slots: out}, nil
}

// paramType returns the type fn expects at argument position i, unrolling
// the variadic tail.
func paramType(ft reflect.Type, i int) reflect.Type {
	if ft.IsVariadic() && i >= ft.NumIn()-1 {
		return ft.In(ft.NumIn() - 1).Elem()
	}
	return ft.In(i)
}
