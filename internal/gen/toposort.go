package gen

import (
	"sort"

	"model-generator/internal/schema"
)

// orderClasses returns indices of classes so that referenced models come
// before the classes that use them. Ties are broken by class name.
func orderClasses(classes []*schema.ClassSpec) []int {
	byName := make(map[string]int, len(classes))
	for i, c := range classes {
		byName[c.ClassName()] = i
	}

	names := make([]int, len(classes))
	for i := range names {
		names[i] = i
	}

	// Rank by name so the index-based sort below is name-ordered.
	sort.SliceStable(names, func(a, b int) bool {
		return classes[names[a]].ClassName() < classes[names[b]].ClassName()
	})

	rank := make([]int, len(classes))
	for r, i := range names {
		rank[i] = r
	}

	order := topoSort(len(classes), func(r int) []int {
		var deps []int

		for _, ref := range classes[names[r]].References() {
			if j, ok := byName[ref]; ok && rank[j] != r {
				deps = append(deps, rank[j])
			}
		}

		return deps
	})

	res := make([]int, len(order))
	for k, r := range order {
		res[k] = names[r]
	}

	return res
}

// topoSort returns node indices in dependency order.
//
// depsFn(i) yields indices that must come before i. The result is
// deterministic: when multiple nodes are available, the smallest index is
// picked. Reference cycles are legal between models, so a cycle is broken by
// releasing the smallest index still pending.
func topoSort(n int, depsFn func(i int) []int) []int {
	if n <= 0 {
		return nil
	}

	indeg := make([]int, n)
	out := make([][]int, n)

	for i := 0; i < n; i++ {
		for _, d := range depsFn(i) {
			if d < 0 || d >= n {
				continue
			}

			indeg[i]++
			out[d] = append(out[d], i)
		}
	}

	for i := range out {
		sort.Ints(out[i])
	}

	done := make([]bool, n)
	order := make([]int, 0, n)

	var ready []int

	for i := 0; i < n; i++ {
		if indeg[i] == 0 {
			ready = append(ready, i)
		}
	}

	for len(order) < n {
		if len(ready) == 0 {
			for i := 0; i < n; i++ {
				if !done[i] {
					ready = append(ready, i)
					break
				}
			}
		}

		i := ready[0]
		ready = ready[1:]

		if done[i] {
			continue
		}

		done[i] = true
		order = append(order, i)

		for _, j := range out[i] {
			indeg[j]--
			if indeg[j] == 0 && !done[j] {
				// Insert while keeping ready sorted.
				k := sort.SearchInts(ready, j)
				ready = append(ready, 0)
				copy(ready[k+1:], ready[k:])
				ready[k] = j
			}
		}
	}

	return order
}
