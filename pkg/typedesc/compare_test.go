package typedesc

import (
	"reflect"
	"testing"
)

func TestOrderings(t *testing.T) {
	tests := []struct {
		name string
		less Less
		a, b Desc
		want bool
	}{
		{"BySize 1 vs 4", BySize, Of[int8](), Of[int32](), true},
		{"BySize 4 vs 1", BySize, Of[int32](), Of[int8](), false},
		{"BySize tie", BySize, Of[int32](), Of[float32](), false},
		{"ByAlign byte vs word", ByAlign, Of[byte](), Of[int64](), true},
		{"ByAlign tie", ByAlign, Of[int64](), Of[float64](), false},
		{"ByName bool vs int", ByName, Of[bool](), Of[int](), true},
		{"ByName unnamed", ByName, Of[[]byte](), Of[bool](), true},
		{"ByKind bool vs string", ByKind, Of[bool](), Of[string](), reflect.Bool < reflect.String},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.less(tt.a, tt.b); got != tt.want {
				t.Errorf("less(%s, %s) = %v, want %v", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestOrderingsIgnoreValues(t *testing.T) {
	// Two descriptors of the same type always tie, regardless of how the
	// descriptors were produced.
	a := Of[int]()
	b := From(12345)
	if BySize(a, b) || BySize(b, a) {
		t.Errorf("identical types must tie under BySize")
	}
	if ByName(a, b) || ByName(b, a) {
		t.Errorf("identical types must tie under ByName")
	}
}
