package tables

import "github.com/tsawler/pdfstruct/model"

// adjacent reports whether the bounding boxes of two segments intersect
// or come within snap of each other.
func adjacent(a, b model.Segment, snap float64) bool {
	ra, rb := a.BBox(), b.BBox()
	return ra.X0 <= rb.X1+snap && ra.X1+snap >= rb.X0 &&
		ra.Y0 <= rb.Y1+snap && ra.Y1+snap >= rb.Y0
}

// GroupSegments splits segments into connected components of the
// adjacency relation. Each component is one table candidate. Components
// come out in the order of their first segment in segs, and segments
// inside a component keep their relative order.
func GroupSegments(segs []model.Segment, snap float64) [][]model.Segment {
	n := len(segs)
	neighbors := make([][]int, n)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if adjacent(segs[i], segs[j], snap) {
				neighbors[i] = append(neighbors[i], j)
				neighbors[j] = append(neighbors[j], i)
			}
		}
	}

	visited := make([]bool, n)
	var groups [][]model.Segment
	for start := 0; start < n; start++ {
		if visited[start] {
			continue
		}
		var members []int
		stack := []int{start}
		for len(stack) > 0 {
			node := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			if visited[node] {
				continue
			}
			visited[node] = true
			members = append(members, node)
			stack = append(stack, neighbors[node]...)
		}

		group := make([]model.Segment, 0, len(members))
		for i := 0; i < n && len(group) < len(members); i++ {
			if contains(members, i) {
				group = append(group, segs[i])
			}
		}
		groups = append(groups, group)
	}
	return groups
}

func contains(ints []int, v int) bool {
	for _, i := range ints {
		if i == v {
			return true
		}
	}
	return false
}
