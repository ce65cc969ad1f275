package huffman

import (
	"fmt"
	"unicode/utf8"
)

// State is the phase of a Builder.
type State uint8

const (
	// AwaitingInput: no leaves loaded yet.
	AwaitingInput State = iota
	// Building: more than one element in the pool, Step may be called.
	Building
	// Done: at most one element left; the tree is complete.
	Done
)

func (s State) String() string {
	switch s {
	case AwaitingInput:
		return "awaiting-input"
	case Building:
		return "building"
	case Done:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", uint8(s))
	}
}

// Builder reduces a forest of leaves to a single Huffman tree, one merge per
// call to Step. Between calls the pool is always a complete, consistent
// forest, so a caller may pause, inspect or discard the build at any point.
type Builder struct {
	pool  Pool
	state State
	steps int
}

// NewBuilder returns a Builder awaiting input.
func NewBuilder() *Builder {
	return &Builder{}
}

// Load inserts leaves into the pool in slice order, which is also the
// tie-break order among equal weights. With fewer than two leaves the
// Builder moves straight to Done; otherwise it moves to Building. A nil
// leaf fails the whole load with ErrInvalidState and nothing is inserted.
func (b *Builder) Load(leaves []*Node) error {
	if b.state != AwaitingInput {
		return fmt.Errorf("load in state %s: %w", b.state, ErrInvalidState)
	}
	for i, n := range leaves {
		if n == nil {
			return fmt.Errorf("load: leaf %d is nil: %w", i, ErrInvalidState)
		}
	}
	for _, n := range leaves {
		b.pool.Insert(n)
	}
	if b.pool.Len() > 1 {
		b.state = Building
	} else {
		b.state = Done
	}
	return nil
}

// Step performs one merge: the two smallest elements are removed and
// replaced by an internal node with the smaller one as its left child. It
// returns the new node.
func (b *Builder) Step() (*Node, error) {
	if b.state != Building {
		return nil, fmt.Errorf("step in state %s: %w", b.state, ErrInvalidState)
	}
	left, right, err := b.pool.ExtractTwoSmallest()
	if err != nil {
		return nil, err
	}
	parent := merge(left, right)
	b.pool.Insert(parent)
	b.steps++
	if b.pool.Len() == 1 {
		b.state = Done
	}
	return parent, nil
}

// State returns the current phase.
func (b *Builder) State() State { return b.state }

// Steps returns the number of merges performed so far.
func (b *Builder) Steps() int { return b.steps }

// Len returns the number of forest roots still in the pool.
func (b *Builder) Len() int { return b.pool.Len() }

// Forest returns the current forest roots in ascending order.
func (b *Builder) Forest() []*Node { return b.pool.Snapshot() }

// Root returns the finished tree. It is nil for empty input and a single
// leaf when the input had one distinct symbol.
func (b *Builder) Root() (*Node, error) {
	if b.state != Done {
		return nil, fmt.Errorf("root in state %s: %w", b.state, ErrNotReady)
	}
	forest := b.pool.Snapshot()
	if len(forest) == 0 {
		return nil, nil
	}
	return forest[0], nil
}

// Reset discards all progress and returns the Builder to AwaitingInput.
func (b *Builder) Reset() {
	*b = Builder{}
}

// Build tallies text, loads the leaves and merges until done, returning the
// root of the finished tree. Text that is not valid UTF-8 is rejected with
// ErrInvalidUTF8 before any state changes.
func (b *Builder) Build(text string) (*Node, error) {
	if !utf8.ValidString(text) {
		return nil, ErrInvalidUTF8
	}
	if err := b.Load(TallyString(text)); err != nil {
		return nil, err
	}
	for b.state == Building {
		if _, err := b.Step(); err != nil {
			return nil, err
		}
	}
	return b.Root()
}
