package scaffold

import (
	"errors"
	"testing"
)

func TestTopoSort_ParentsFirst(t *testing.T) {
	// 0 -> 1, 0 -> 2, 1 -> 2
	parents := [][]int{nil, {0}, {0, 1}}

	order, err := topoSort(len(parents), func(i int) []int { return parents[i] })
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{0, 1, 2}
	if len(order) != len(exp) {
		t.Fatalf("expected %v, got %v", exp, order)
	}

	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSort_SmallestReadyFirst(t *testing.T) {
	parents := [][]int{{3}, nil, {1}, nil}

	order, err := topoSort(len(parents), func(i int) []int { return parents[i] })
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	exp := []int{1, 2, 3, 0}
	for i := range exp {
		if order[i] != exp[i] {
			t.Fatalf("expected %v, got %v", exp, order)
		}
	}
}

func TestTopoSort_Cycle(t *testing.T) {
	_, err := topoSort(2, func(i int) []int {
		if i == 0 {
			return []int{1}
		}

		return []int{0}
	})
	if !errors.Is(err, errCycle) {
		t.Fatalf("expected cycle error, got %v", err)
	}
}

func TestTopoSort_OutOfRange(t *testing.T) {
	_, err := topoSort(1, func(int) []int { return []int{4} })
	if err == nil {
		t.Fatalf("expected error, got nil")
	}
}
