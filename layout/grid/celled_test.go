package grid

import "testing"

func TestCelledValue(t *testing.T) {
	c := CelledValue(42)
	v, err := c.Resolve(3, 7, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 42 {
		t.Errorf("expected 42, got %d", v)
	}
}

func TestCelledArray(t *testing.T) {
	c := CelledArray([]int{1, 2, 3})
	cases := []struct {
		x, want int
	}{
		{0, 1}, {1, 2}, {2, 3}, {3, 1}, {4, 2}, {-1, 3},
	}
	for _, tc := range cases {
		v, err := c.Resolve(tc.x, 0, nil)
		if err != nil {
			t.Fatalf("x=%d: unexpected error: %v", tc.x, err)
		}
		if v != tc.want {
			t.Errorf("x=%d: got %d, want %d", tc.x, v, tc.want)
		}
	}
}

func TestCelledArrayEmpty(t *testing.T) {
	c := CelledArray([]int{})
	v, err := c.Resolve(0, 0, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 0 {
		t.Errorf("expected zero value for empty array, got %d", v)
	}
}

func TestCelledFunc(t *testing.T) {
	c := CelledFunc(func(x, y int) (int, error) {
		return x * 10 + y, nil
	})
	v, err := c.Resolve(2, 3, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if v != 23 {
		t.Errorf("expected 23, got %d", v)
	}
}

func TestCelledFuncError(t *testing.T) {
	c := CelledFunc(func(x, y int) (int, error) {
		return 0, errTestFunc
	})
	_, err := c.Resolve(0, 0, nil)
	if err == nil {
		t.Fatal("expected an error from a failing celled function")
	}
	var gridErr *Error
	if !asGridError(err, &gridErr) {
		t.Fatalf("expected a *grid.Error, got %T", err)
	}
	if gridErr.Kind != KindEvaluationFailure {
		t.Errorf("expected KindEvaluationFailure, got %v", gridErr.Kind)
	}
}

var errTestFunc = errTest("boom")

type errTest string

func (e errTest) Error() string { return string(e) }

func asGridError(err error, out **Error) bool {
	ge, ok := err.(*Error)
	if ok {
		*out = ge
	}
	return ok
}
