package slppool

import (
	"errors"
	"testing"
)

func TestRunPreservesOrderAndErrors(t *testing.T) {
	items := []int{1, 2, 3, 4, 5}
	results := Run(items, 3, func(n int) (int, error) {
		if n == 3 {
			return 0, errors.New("boom")
		}
		return n * n, nil
	})

	if len(results) != len(items) {
		t.Fatalf("len(results) = %d, want %d", len(results), len(items))
	}
	for i, r := range results {
		if r.Index != i {
			t.Errorf("results[%d].Index = %d, want %d", i, r.Index, i)
		}
		if items[i] == 3 {
			if r.Err == nil {
				t.Errorf("results[%d].Err should be non-nil", i)
			}
			continue
		}
		if r.Err != nil {
			t.Errorf("results[%d].Err = %v, want nil", i, r.Err)
		}
		if r.Value != items[i]*items[i] {
			t.Errorf("results[%d].Value = %d, want %d", i, r.Value, items[i]*items[i])
		}
	}
}

func TestRunEmptyInput(t *testing.T) {
	results := Run[int, int](nil, 4, func(n int) (int, error) { return n, nil })
	if len(results) != 0 {
		t.Errorf("len(results) = %d, want 0", len(results))
	}
}
