package tuple

import (
	"errors"
	"testing"
)

func TestEqual(t *testing.T) {
	tests := []struct {
		name string
		a, b Tuple
		want bool
	}{
		{"equal mixed", Of(1, "a", true), Of(1, "a", true), true},
		{"both empty", Of(), Tuple{}, true},
		{"value differs", Of(1, 2), Of(1, 3), false},
		{"same rendering different type", Of(int32(1)), Of(int64(1)), false},
		{"declared type differs", Of1[any](1), Of(1), false},
		{"deep values", Of([]int{1, 2}, map[string]int{"a": 1}), Of([]int{1, 2}, map[string]int{"a": 1}), true},
		{"deep values differ", Of([]int{1, 2}), Of([]int{2, 1}), false},
		{"nil slots", Of(nil), Of(nil), true},
		{"nil vs typed nil", Of(nil), Of1[*int](nil), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Equal(tt.a, tt.b)
			if err != nil {
				t.Fatalf("Equal error: %v", err)
			}
			if got != tt.want {
				t.Errorf("Equal() = %v, want %v", got, tt.want)
			}

			swapped, err := Equal(tt.b, tt.a)
			if err != nil {
				t.Fatalf("Equal (swapped) error: %v", err)
			}
			if swapped != got {
				t.Errorf("Equal is asymmetric: %v vs %v", got, swapped)
			}
		})
	}
}

func TestEqualLengthMismatch(t *testing.T) {
	_, err := Equal(Of(1), Of(1, 2))

	var lm *LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("Equal error = %v, want *LengthMismatchError", err)
	}
	if lm.A != 1 || lm.B != 2 {
		t.Errorf("error = %v, want lengths 1 and 2", lm)
	}
	if got, want := lm.Error(), "tuple length mismatch: 1 vs 2"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}
