package scaffold

import (
	"errors"
	"fmt"
	"sort"
)

// errCycle is returned by topoSort when the graph is not a DAG.
var errCycle = errors.New("cycle detected")

// topoSort returns node indices such that every node comes after the nodes
// listed by before(i).
//
// The result is deterministic: when several nodes are ready, the smallest
// index goes first.
func topoSort(n int, before func(i int) []int) ([]int, error) {
	if n <= 0 {
		return nil, nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := range n {
		for _, d := range before(i) {
			if d < 0 || d >= n {
				return nil, fmt.Errorf("index out of range: %d follows %d", i, d)
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	var ready []int

	for i := range n {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	order := make([]int, 0, n)

	for len(ready) > 0 {
		i := ready[0]
		ready = ready[1:]

		order = append(order, i)
		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 {
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	if len(order) != n {
		return nil, errCycle
	}

	return order, nil
}
