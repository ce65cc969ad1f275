package huffman

import (
	"container/heap"
	"slices"
)

// pooled is a forest element stamped with its insertion sequence.
type pooled struct {
	node *Node
	seq  uint64
}

// poolHeap is a min-heap of forest elements by weight, with ties going to the
// element inserted first.
type poolHeap []pooled

// Len implements heap.Interface and returns the number of elements.
func (h poolHeap) Len() int { return len(h) }

// Less implements heap.Interface ordering by ascending weight, breaking ties
// by ascending insertion sequence.
func (h poolHeap) Less(i, j int) bool { return less(h[i], h[j]) }

// Swap implements heap.Interface swap.
func (h poolHeap) Swap(i, j int) { h[i], h[j] = h[j], h[i] }

// Push implements heap.Interface push.
func (h *poolHeap) Push(x any) { *h = append(*h, x.(pooled)) }

// Pop implements heap.Interface pop.
func (h *poolHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	old[n-1] = pooled{}
	*h = old[0 : n-1]
	return x
}

func less(a, b pooled) bool {
	if a.node.weight != b.node.weight {
		return a.node.weight < b.node.weight
	}
	return a.seq < b.seq
}

// Pool holds the current forest roots ordered by weight. Among equal weights
// the element inserted earlier orders first, which fixes the tree shape for
// a given insertion sequence.
//
// The zero value is an empty pool ready for use.
type Pool struct {
	h      poolHeap
	next   uint64 // sequence stamp for the next Insert
	weight int    // sum of weights currently held
}

// Insert adds n to the pool. A nil n is ignored.
func (p *Pool) Insert(n *Node) {
	if n == nil {
		return
	}
	heap.Push(&p.h, pooled{node: n, seq: p.next})
	p.next++
	p.weight += n.weight
}

// ExtractTwoSmallest removes and returns the two smallest elements, smallest
// first. It returns ErrEmptyPool and leaves the pool untouched when fewer
// than two elements are present.
func (p *Pool) ExtractTwoSmallest() (a, b *Node, err error) {
	if p.h.Len() < 2 {
		return nil, nil, ErrEmptyPool
	}
	a = heap.Pop(&p.h).(pooled).node
	b = heap.Pop(&p.h).(pooled).node
	p.weight -= a.weight + b.weight
	return a, b, nil
}

// Len returns the number of elements in the pool.
func (p *Pool) Len() int { return p.h.Len() }

// Weight returns the summed weight of all elements in the pool.
func (p *Pool) Weight() int { return p.weight }

// Snapshot returns the pool contents in extraction order without modifying
// the pool.
func (p *Pool) Snapshot() []*Node {
	items := slices.Clone(p.h)
	slices.SortFunc(items, func(a, b pooled) int {
		switch {
		case less(a, b):
			return -1
		case less(b, a):
			return 1
		}
		return 0
	})
	out := make([]*Node, len(items))
	for i, it := range items {
		out[i] = it.node
	}
	return out
}
