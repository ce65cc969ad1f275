package huffman

import (
	"context"
	"fmt"
	"time"
	"unicode/utf8"
)

// Phase is the unit of work a Scheduler tick performed.
type Phase uint8

const (
	// Tallying: one input symbol was counted.
	Tallying Phase = iota
	// Merging: one Builder.Step was performed.
	Merging
	// Coding: the code table was generated.
	Coding
	// Finished: nothing left to do.
	Finished
)

func (p Phase) String() string {
	switch p {
	case Tallying:
		return "tallying"
	case Merging:
		return "merging"
	case Coding:
		return "coding"
	case Finished:
		return "finished"
	default:
		return fmt.Sprintf("Phase(%d)", uint8(p))
	}
}

// Event describes the outcome of one tick.
type Event struct {
	Phase  Phase
	Symbol rune  // symbol counted, for Tallying
	Merged *Node // node created, for Merging
}

// Scheduler drives a complete build of one text, one unit of work per Tick:
// first every input symbol is counted, then every merge is performed, then
// the code table is generated. A Scheduler owns all of its state; cancelling
// a build means dropping the Scheduler and creating a new one.
type Scheduler struct {
	text    string
	valid   bool // text is valid UTF-8
	pos     int  // byte offset of the next rune to tally
	tally   *Tally
	builder *Builder
	table   *CodeTable
	phase   Phase
}

// NewScheduler returns a Scheduler for text. No work is done until Tick.
func NewScheduler(text string) *Scheduler {
	return &Scheduler{
		text:    text,
		valid:   utf8.ValidString(text),
		tally:   NewTally(),
		builder: NewBuilder(),
	}
}

// Tick performs the next unit of work and reports what it did. Once the table
// exists every further Tick returns a Finished event. If the text is not
// valid UTF-8 every Tick fails with ErrInvalidUTF8 and no work is done.
func (s *Scheduler) Tick() (Event, error) {
	if !s.valid {
		return Event{}, ErrInvalidUTF8
	}
	// Empty or fully tallied input: hand the leaves to the builder first, so
	// the tick still performs a merge or generates the table.
	if s.phase == Tallying && s.pos >= len(s.text) {
		if err := s.builder.Load(s.tally.Leaves()); err != nil {
			return Event{}, err
		}
		s.phase = Merging
	}

	switch s.phase {
	case Tallying:
		r, size := utf8.DecodeRuneInString(s.text[s.pos:])
		s.tally.Add(r)
		s.pos += size
		return Event{Phase: Tallying, Symbol: r}, nil

	case Merging:
		if s.builder.State() == Building {
			n, err := s.builder.Step()
			if err != nil {
				return Event{}, err
			}
			if s.builder.State() == Done {
				s.phase = Coding
			}
			return Event{Phase: Merging, Merged: n}, nil
		}
		s.phase = Coding
		fallthrough

	case Coding:
		tbl, err := Generate(s.builder)
		if err != nil {
			return Event{}, err
		}
		s.table = tbl
		s.phase = Finished
		return Event{Phase: Coding}, nil
	}
	return Event{Phase: Finished}, nil
}

// Done reports whether the code table has been generated.
func (s *Scheduler) Done() bool { return s.phase == Finished }

// Phase returns the kind of work the next Tick will perform.
func (s *Scheduler) Phase() Phase {
	if s.phase == Tallying && s.pos >= len(s.text) {
		return Merging
	}
	if s.phase == Merging && s.builder.State() != Building {
		return Coding
	}
	return s.phase
}

// Tally returns the symbol counts gathered so far.
func (s *Scheduler) Tally() *Tally { return s.tally }

// Builder returns the Builder being driven, for inspecting the forest.
func (s *Scheduler) Builder() *Builder { return s.builder }

// Table returns the code table, or ErrNotReady before it is generated.
func (s *Scheduler) Table() (*CodeTable, error) {
	if s.table == nil {
		return nil, fmt.Errorf("table in phase %s: %w", s.phase, ErrNotReady)
	}
	return s.table, nil
}

// Run calls Tick once per value received from ticks until the table is
// generated, passing each event to fn if fn is non-nil. It returns
// ctx.Err() if ctx is cancelled first, and ErrInvalidState if ticks is
// closed early. Cancellation is only observed between ticks.
func (s *Scheduler) Run(ctx context.Context, ticks <-chan time.Time, fn func(Event)) (*CodeTable, error) {
	for !s.Done() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case _, ok := <-ticks:
			if !ok {
				return nil, fmt.Errorf("tick source closed in phase %s: %w", s.Phase(), ErrInvalidState)
			}
		}
		// select picks randomly when a tick and cancellation are both ready
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		ev, err := s.Tick()
		if err != nil {
			return nil, err
		}
		if fn != nil {
			fn(ev)
		}
	}
	return s.table, nil
}
