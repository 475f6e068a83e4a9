package chart

// Compact assigns every task a layer so that no two tasks sharing a layer
// overlap in angle, mutating the Layer field in place, and returns the
// resulting layer count.
//
// Tasks are processed in input order. Each task scans existing layers in
// creation order and settles on the first one where every resident leaves
// its angular range free; if none qualifies a new layer is opened. The scan
// order is deliberate: it keeps the assignment stable for a given input
// sequence, at the cost of occasionally using more layers than an optimal
// interval coloring would.
//
// Two tasks are considered free of each other when one ends before (or
// exactly where) the other begins, so arcs that merely touch at a boundary
// share a layer. A zero-sweep task is a point and conflicts only with arcs
// strictly covering it.
func Compact(tasks []Task) int {
	var layers [][]int // task indices per layer, in creation order

	for i := range tasks {
		placed := false
		for l, members := range layers {
			if fits(tasks, members, tasks[i]) {
				tasks[i].Layer = l
				layers[l] = append(members, i)
				placed = true
				break
			}
		}
		if !placed {
			tasks[i].Layer = len(layers)
			layers = append(layers, []int{i})
		}
	}
	return len(layers)
}

// fits reports whether t conflicts with none of the layer's members.
func fits(tasks []Task, members []int, t Task) bool {
	for _, m := range members {
		existing := tasks[m]
		if existing.StartAngle >= t.EndAngle || existing.EndAngle <= t.StartAngle {
			continue
		}
		return false
	}
	return true
}

// Conflicts returns the pairs of task indices whose angular ranges overlap,
// i.e. the edges of the interval graph that Compact colors. The debug
// overlap view renders this graph directly.
func Conflicts(tasks []Task) [][2]int {
	var pairs [][2]int
	for i := range tasks {
		for j := i + 1; j < len(tasks); j++ {
			a, b := tasks[i], tasks[j]
			if a.StartAngle >= b.EndAngle || a.EndAngle <= b.StartAngle {
				continue
			}
			pairs = append(pairs, [2]int{i, j})
		}
	}
	return pairs
}
