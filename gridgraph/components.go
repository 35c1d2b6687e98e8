package gridgraph

// ConnectedComponents finds all contiguous islands of filled cells under
// gg.Conn. Each component is a slice of row-major cell indices in BFS order;
// components are ordered by their first cell in row-major scan.
//
// Time:   O(W·H·d), where d = 4 or 8.
// Memory: O(W·H) for visited flags and output.
func (gg *GridGraph) ConnectedComponents() [][]int {
	seen := make([]bool, len(gg.filled))
	var comps [][]int

	for i0, filled := range gg.filled {
		if !filled || seen[i0] {
			continue
		}
		// BFS to collect component
		queue := []int{i0}
		seen[i0] = true
		for qi := 0; qi < len(queue); qi++ {
			ux, uy := gg.Coordinate(queue[qi])
			for _, d := range gg.neighborOffsets {
				vx, vy := ux+d[0], uy+d[1]
				if !gg.Filled(vx, vy) {
					continue
				}
				vi := gg.index(vx, vy)
				if !seen[vi] {
					seen[vi] = true
					queue = append(queue, vi)
				}
			}
		}
		comps = append(comps, queue)
	}
	return comps
}

// IsConnected reports whether the filled cells form at most one island.
func (gg *GridGraph) IsConnected() bool {
	return len(gg.ConnectedComponents()) <= 1
}

// LargestComponent returns the biggest island (first one on ties), or nil
// when nothing is filled.
func (gg *GridGraph) LargestComponent() []int {
	var best []int
	for _, c := range gg.ConnectedComponents() {
		if len(c) > len(best) {
			best = c
		}
	}
	return best
}
