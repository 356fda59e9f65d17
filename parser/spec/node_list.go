package spec

// https://dom.spec.whatwg.org/#nodelist
type NodeList []*Node

// Contains returns the index of n, or -1.
func (h *NodeList) Contains(n *Node) int {
	for i, v := range *h {
		if v == n {
			return i
		}
	}
	return -1
}

func (h *NodeList) Remove(i int) *Node {
	if i < 0 || i >= len(*h) {
		return nil
	}
	n := (*h)[i]
	*h = append((*h)[:i], (*h)[i+1:]...)
	return n
}

// WedgeIn inserts n at position i, shifting the rest right.
func (h *NodeList) WedgeIn(i int, n *Node) {
	*h = append(*h, nil)
	copy((*h)[i+1:], (*h)[i:])
	(*h)[i] = n
}

func (h *NodeList) Push(n *Node) {
	*h = append(*h, n)
}

func (h *NodeList) Pop() *Node {
	if len(*h) == 0 {
		return nil
	}
	n := (*h)[len(*h)-1]
	*h = (*h)[:len(*h)-1]
	return n
}

// Top returns the last entry without removing it.
func (h *NodeList) Top() *Node {
	if len(*h) == 0 {
		return nil
	}
	return (*h)[len(*h)-1]
}
