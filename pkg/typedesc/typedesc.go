// Package typedesc describes the static type of a container slot.
//
// A Desc is an immutable descriptor for one element type. Descriptors are
// captured once at construction time and travel with the slot; every
// type-driven decision (ordering, assignability, retrieval checks) is made
// against descriptors, never against slot values.
package typedesc

import "reflect"

// Desc is an element type descriptor. The zero value describes the type of
// an untyped nil value.
type Desc struct {
	rt reflect.Type
}

// Of returns the descriptor for the declared type T. Unlike From, it
// preserves interface types: Of[io.Reader]() describes io.Reader itself,
// not the dynamic type of some value.
func Of[T any]() Desc {
	return Desc{rt: reflect.TypeOf((*T)(nil)).Elem()}
}

// From returns the descriptor for the dynamic type of v.
// From(nil) is the nil descriptor.
func From(v any) Desc {
	return Desc{rt: reflect.TypeOf(v)}
}

// Wrap returns the descriptor for a reflect.Type. A nil argument yields the
// nil descriptor.
func Wrap(rt reflect.Type) Desc {
	return Desc{rt: rt}
}

// Valid reports whether d describes an actual type. Only the nil
// descriptor is invalid.
func (d Desc) Valid() bool { return d.rt != nil }

// Size returns the byte size of the described type, 0 for the nil
// descriptor.
func (d Desc) Size() uintptr {
	if d.rt == nil {
		return 0
	}
	return d.rt.Size()
}

// Align returns the alignment of the described type, 0 for the nil
// descriptor.
func (d Desc) Align() int {
	if d.rt == nil {
		return 0
	}
	return d.rt.Align()
}

// Kind returns the reflect kind, reflect.Invalid for the nil descriptor.
func (d Desc) Kind() reflect.Kind {
	if d.rt == nil {
		return reflect.Invalid
	}
	return d.rt.Kind()
}

// Name returns the defined name of the type ("" for unnamed types and the
// nil descriptor).
func (d Desc) Name() string {
	if d.rt == nil {
		return ""
	}
	return d.rt.Name()
}

func (d Desc) String() string {
	if d.rt == nil {
		return "<nil>"
	}
	return d.rt.String()
}

// Equal reports whether both descriptors describe the identical type.
func (d Desc) Equal(other Desc) bool { return d.rt == other.rt }

// Comparable reports whether values of the described type support ==.
// The nil descriptor is comparable (nil == nil holds).
func (d Desc) Comparable() bool {
	if d.rt == nil {
		return true
	}
	return d.rt.Comparable()
}

// AssignableTo reports whether a value of this type can be bound to a
// destination of type other. The nil descriptor is assignable to any
// nil-able destination.
func (d Desc) AssignableTo(other Desc) bool {
	if other.rt == nil {
		return d.rt == nil
	}
	if d.rt == nil {
		switch other.rt.Kind() {
		case reflect.Interface, reflect.Pointer, reflect.Map, reflect.Slice,
			reflect.Chan, reflect.Func, reflect.UnsafePointer:
			return true
		default:
			return false
		}
	}
	return d.rt.AssignableTo(other.rt)
}

// Reflect returns the underlying reflect.Type (nil for the nil descriptor).
func (d Desc) Reflect() reflect.Type { return d.rt }
