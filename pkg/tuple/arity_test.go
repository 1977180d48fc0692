package tuple

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"
)

func TestOfNKeepsDeclaredTypes(t *testing.T) {
	tup := Of3[any, error, io.Writer](42, nil, nil)

	want := []string{"interface {}", "error", "io.Writer"}
	for i, w := range want {
		desc, err := tup.TypeAt(i)
		if err != nil {
			t.Fatalf("TypeAt(%d) error: %v", i, err)
		}
		if desc.String() != w {
			t.Errorf("TypeAt(%d) = %s, want %s", i, desc, w)
		}
	}
}

func TestToRoundTrip(t *testing.T) {
	a, b, c, err := To3[int, string, bool](Of3[int, string, bool](42, "x", true))
	if err != nil {
		t.Fatalf("To3 error: %v", err)
	}
	if a != 42 || b != "x" || c != true {
		t.Errorf("To3 = (%v, %v, %v), want (42, x, true)", a, b, c)
	}
}

func TestToFullWidthRoundTrip(t *testing.T) {
	tup := Of8[int, string, int, string, int, string, int, string](0, "a", 2, "b", 4, "c", 6, "d")

	v0, v1, v2, v3, v4, v5, v6, v7, err := To8[int, string, int, string, int, string, int, string](tup)
	if err != nil {
		t.Fatalf("To8 error: %v", err)
	}
	got := fmt.Sprint(v0, v1, v2, v3, v4, v5, v6, v7)
	want := fmt.Sprint(0, "a", 2, "b", 4, "c", 6, "d")
	if got != want {
		t.Errorf("To8 = %q, want %q", got, want)
	}
}

func TestToArityMismatch(t *testing.T) {
	_, _, err := To2[int, int](Of(1))

	var lm *LengthMismatchError
	if !errors.As(err, &lm) {
		t.Fatalf("To2 error = %v, want *LengthMismatchError", err)
	}
	if lm.A != 2 || lm.B != 1 {
		t.Errorf("error = %v, want lengths 2 and 1", lm)
	}
}

func TestToTypeMismatch(t *testing.T) {
	_, _, err := To2[int, int64](Of(1, 2))

	var ste *SlotTypeError
	if !errors.As(err, &ste) {
		t.Fatalf("To2 error = %v, want *SlotTypeError", err)
	}
	if ste.Index != 1 {
		t.Errorf("SlotTypeError.Index = %d, want 1", ste.Index)
	}
}

func TestApplyN(t *testing.T) {
	label := func(name string, n int) string { return fmt.Sprintf("%s-%d", name, n) }

	got, err := Apply2(label, Of2[string, int]("x", 7))
	if err != nil {
		t.Fatalf("Apply2 error: %v", err)
	}
	if got != "x-7" {
		t.Errorf("Apply2 = %q, want %q", got, "x-7")
	}

	sum := func(a, b, c, d, e, f, g, h int) int { return a + b + c + d + e + f + g + h }
	total, err := Apply8(sum, Of(1, 2, 3, 4, 5, 6, 7, 8))
	if err != nil {
		t.Fatalf("Apply8 error: %v", err)
	}
	if total != 36 {
		t.Errorf("Apply8 = %d, want 36", total)
	}
}

func TestApplyNAssignableBinding(t *testing.T) {
	// A slot declared *strings.Reader binds to an io.Reader parameter.
	first := func(r io.Reader) byte {
		buf := make([]byte, 1)
		if _, err := r.Read(buf); err != nil {
			return 0
		}
		return buf[0]
	}

	got, err := Apply1(first, Of(strings.NewReader("z")))
	if err != nil {
		t.Fatalf("Apply1 error: %v", err)
	}
	if got != 'z' {
		t.Errorf("Apply1 = %q, want %q", got, byte('z'))
	}
}

func TestApplyNNamedTypeBinding(t *testing.T) {
	type row []int

	// An unnamed slice slot binds to a named slice parameter, and a named
	// slice slot binds back to an unnamed one.
	length := func(r row) int { return len(r) }
	got, err := Apply1(length, Of([]int{1, 2, 3}))
	if err != nil {
		t.Fatalf("Apply1 error: %v", err)
	}
	if got != 3 {
		t.Errorf("Apply1 = %d, want 3", got)
	}

	head := func(s []int) int { return s[0] }
	first, err := Apply1(head, Of1[row](row{7, 8}))
	if err != nil {
		t.Fatalf("Apply1 error: %v", err)
	}
	if first != 7 {
		t.Errorf("Apply1 = %d, want 7", first)
	}
}

func TestApplyNArityMismatch(t *testing.T) {
	double := func(a int) int { return 2 * a }

	_, err := Apply1(double, Of(1, 2))
	var ac *ArgCountError
	if !errors.As(err, &ac) {
		t.Fatalf("Apply1 error = %v, want *ArgCountError", err)
	}
	if ac.Want != 1 || ac.Got != 2 || ac.AtLeast {
		t.Errorf("error = %v, want exactly 1 argument, got 2", ac)
	}
}

func TestApplyNSlotTypeMismatch(t *testing.T) {
	double := func(a int) int { return 2 * a }

	_, err := Apply1(double, Of("x"))
	var ste *SlotTypeError
	if !errors.As(err, &ste) {
		t.Fatalf("Apply1 error = %v, want *SlotTypeError", err)
	}
	if ste.Index != 0 {
		t.Errorf("SlotTypeError.Index = %d, want 0", ste.Index)
	}
}

func TestApplyNNilFunc(t *testing.T) {
	_, err := Apply1[int, int](nil, Of(1))

	var nf *NotFuncError
	if !errors.As(err, &nf) {
		t.Fatalf("Apply1(nil) error = %v, want *NotFuncError", err)
	}
	if got, want := nf.Error(), "apply: nil function"; got != want {
		t.Errorf("message = %q, want %q", got, want)
	}
}
