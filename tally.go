package huffman

// Tally counts symbol occurrences in the order symbols are fed to it.
//
// Symbols are stored densely: index i of counts belongs to order[i], the i-th
// distinct symbol seen. The index map only translates a rune to that slot, so
// Leaves can emit first-occurrence order without sorting.
type Tally struct {
	index  map[rune]int // symbol -> slot in order/counts
	order  []rune       // distinct symbols, first occurrence first
	counts []int        // occurrences per slot
	total  int          // sum of counts
}

// NewTally returns an empty Tally.
func NewTally() *Tally {
	return &Tally{index: make(map[rune]int)}
}

// Add counts one occurrence of r.
func (t *Tally) Add(r rune) {
	if t.index == nil {
		t.index = make(map[rune]int)
	}
	slot, ok := t.index[r]
	if !ok {
		slot = len(t.order)
		t.index[r] = slot
		t.order = append(t.order, r)
		t.counts = append(t.counts, 0)
	}
	t.counts[slot]++
	t.total++
}

// AddString counts every rune of s. Invalid UTF-8 bytes are counted as
// utf8.RuneError; callers needing an exact round trip should reject such
// text first, as Builder.Build and Scheduler do.
func (t *Tally) AddString(s string) {
	for _, r := range s {
		t.Add(r)
	}
}

// Len returns the number of distinct symbols seen.
func (t *Tally) Len() int { return len(t.order) }

// Total returns the number of symbols seen, counting repeats.
func (t *Tally) Total() int { return t.total }

// Count returns how often r was seen.
func (t *Tally) Count(r rune) int {
	slot, ok := t.index[r]
	if !ok {
		return 0
	}
	return t.counts[slot]
}

// Leaves returns one leaf per distinct symbol, weighted by its count, in the
// order each symbol was first seen.
func (t *Tally) Leaves() []*Node {
	leaves := make([]*Node, len(t.order))
	for i, r := range t.order {
		leaves[i] = newLeaf(r, t.counts[i])
	}
	return leaves
}

// TallyString counts the runes of s and returns the resulting leaves.
func TallyString(s string) []*Node {
	t := NewTally()
	t.AddString(s)
	return t.Leaves()
}
