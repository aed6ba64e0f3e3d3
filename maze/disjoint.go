package maze

// disjointSet is an indexed union-find over cell indices with path halving and
// union by size.
type disjointSet struct {
	parent []int
	size   []int
	count  int // number of distinct sets
}

// newDisjointSet seeds the sets from the cells' current group ids, so cells
// sharing a group start out in the same set.
func newDisjointSet(cells []Cell) *disjointSet {
	s := &disjointSet{
		parent: make([]int, len(cells)),
		size:   make([]int, len(cells)),
		count:  len(cells),
	}
	for i := range cells {
		s.parent[i] = i
		s.size[i] = 1
	}

	leaders := make(map[int]int)
	for i, c := range cells {
		if leader, ok := leaders[c.Group]; ok {
			s.union(leader, i)
			continue
		}
		leaders[c.Group] = i
	}
	return s
}

func (s *disjointSet) find(i int) int {
	for s.parent[i] != i {
		s.parent[i] = s.parent[s.parent[i]]
		i = s.parent[i]
	}
	return i
}

// union joins the sets holding a and b. It returns false when they were
// already joined.
func (s *disjointSet) union(a, b int) bool {
	ra, rb := s.find(a), s.find(b)
	if ra == rb {
		return false
	}
	if s.size[ra] < s.size[rb] {
		ra, rb = rb, ra
	}
	s.parent[rb] = ra
	s.size[ra] += s.size[rb]
	s.count--
	return true
}
