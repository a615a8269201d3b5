package dom

// --- Ordered sets of children ----------------------------------------------

// childrenSlice keeps the children of a node in document order.
// Unlike the children of a general purpose tree, it never contains holes:
// removing a child closes the gap.
type childrenSlice struct {
	slice []*Node
}

func (chs *childrenSlice) length() int {
	return len(chs.slice)
}

// insertChildAt inserts child at position i, shifting children at later
// positions. i is clamped to [0…length].
func (chs *childrenSlice) insertChildAt(i int, child *Node) {
	if child == nil {
		return
	}
	if i < 0 {
		i = 0
	}
	if i >= len(chs.slice) {
		chs.slice = append(chs.slice, child)
		return
	}
	chs.slice = append(chs.slice, nil)   // make room for one child
	copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
	chs.slice[i] = child
}

// index returns the position of node, or -1.
func (chs *childrenSlice) index(node *Node) int {
	if node == nil {
		return -1
	}
	for i, ch := range chs.slice {
		if ch == node {
			return i
		}
	}
	return -1
}

// removeAt splices out the child at position i and returns it, or nil if
// i is out of range.
func (chs *childrenSlice) removeAt(i int) *Node {
	if i < 0 || i >= len(chs.slice) {
		return nil
	}
	ch := chs.slice[i]
	copy(chs.slice[i:], chs.slice[i+1:])
	chs.slice[len(chs.slice)-1] = nil
	chs.slice = chs.slice[:len(chs.slice)-1]
	return ch
}

func (chs *childrenSlice) child(n int) *Node {
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice) asSlice() []*Node {
	children := make([]*Node, len(chs.slice))
	copy(children, chs.slice)
	return children
}
