package huffman

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestSchedulerTicks(t *testing.T) {
	s := NewScheduler("aaabbc")
	if _, err := s.Table(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("table before run: err=%v want ErrNotReady", err)
	}

	var events []Event
	for !s.Done() {
		ev, err := s.Tick()
		if err != nil {
			t.Fatalf("tick %d: %v", len(events), err)
		}
		events = append(events, ev)
	}

	// 6 symbols, 2 merges, 1 coding tick
	if len(events) != 9 {
		t.Fatalf("ticks=%d want 9", len(events))
	}
	for i, r := range "aaabbc" {
		if events[i].Phase != Tallying || events[i].Symbol != r {
			t.Fatalf("event %d = %+v, want tally of %q", i, events[i], r)
		}
	}
	if events[6].Phase != Merging || events[6].Merged.Weight() != 3 {
		t.Fatalf("event 6 = %+v, want merge of weight 3", events[6])
	}
	if events[7].Phase != Merging || events[7].Merged.Weight() != 6 {
		t.Fatalf("event 7 = %+v, want merge of weight 6", events[7])
	}
	if events[8].Phase != Coding {
		t.Fatalf("event 8 = %+v, want coding", events[8])
	}

	tbl, err := s.Table()
	if err != nil {
		t.Fatalf("table: %v", err)
	}
	if e, _ := tbl.Lookup('a'); e.Code != "0" {
		t.Fatalf("code(a)=%q want 0", e.Code)
	}
	if s.Tally().Total() != 6 || s.Builder().Steps() != 2 {
		t.Fatalf("tally total=%d steps=%d", s.Tally().Total(), s.Builder().Steps())
	}

	ev, err := s.Tick()
	if err != nil || ev.Phase != Finished {
		t.Fatalf("tick after finish = %+v,%v", ev, err)
	}
}

func TestSchedulerPhase(t *testing.T) {
	s := NewScheduler("ab")
	want := []Phase{Tallying, Tallying, Merging, Coding, Finished}
	for i, p := range want {
		if got := s.Phase(); got != p {
			t.Fatalf("before tick %d phase=%s want %s", i, got, p)
		}
		if i < len(want)-1 {
			ev, err := s.Tick()
			if err != nil {
				t.Fatalf("tick %d: %v", i, err)
			}
			if ev.Phase != p {
				t.Fatalf("tick %d did %s, Phase predicted %s", i, ev.Phase, p)
			}
		}
	}
}

func TestSchedulerDegenerate(t *testing.T) {
	cases := []struct {
		text  string
		ticks int
		size  int
	}{
		{"", 1, 0},
		{"x", 2, 1},
		{"xxx", 4, 1},
	}
	for _, tc := range cases {
		s := NewScheduler(tc.text)
		n := 0
		for !s.Done() {
			ev, err := s.Tick()
			if err != nil {
				t.Fatalf("%q tick: %v", tc.text, err)
			}
			if ev.Phase == Merging {
				t.Fatalf("%q performed a merge", tc.text)
			}
			n++
		}
		if n != tc.ticks {
			t.Fatalf("%q ticks=%d want %d", tc.text, n, tc.ticks)
		}
		tbl, err := s.Table()
		if err != nil || tbl.Len() != tc.size {
			t.Fatalf("%q table=%v,%v want %d entries", tc.text, tbl, err, tc.size)
		}
	}
}

func TestSchedulerRun(t *testing.T) {
	text := "abracadabra"
	ticks := make(chan time.Time)
	go func() {
		for {
			select {
			case ticks <- time.Now():
			case <-time.After(time.Second):
				return
			}
		}
	}()

	s := NewScheduler(text)
	merges := 0
	tbl, err := s.Run(context.Background(), ticks, func(ev Event) {
		if ev.Phase == Merging {
			merges++
		}
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if merges != 4 {
		t.Fatalf("merges=%d want 4", merges)
	}
	if tbl.EncodedLen() != 23 {
		t.Fatalf("EncodedLen=%d want 23", tbl.EncodedLen())
	}
}

func TestSchedulerRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	s := NewScheduler("abc")
	if _, err := s.Run(ctx, nil, nil); !errors.Is(err, context.Canceled) {
		t.Fatalf("err=%v want context.Canceled", err)
	}
	if s.Tally().Total() != 0 {
		t.Fatalf("cancelled run did work")
	}
}

func TestSchedulerRunCancelledWithPendingTick(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for range 200 {
		ticks := make(chan time.Time, 1)
		ticks <- time.Time{}
		s := NewScheduler("abc")
		if _, err := s.Run(ctx, ticks, nil); !errors.Is(err, context.Canceled) {
			t.Fatalf("err=%v want context.Canceled", err)
		}
		if s.Tally().Total() != 0 {
			t.Fatalf("cancelled run tallied %d symbols", s.Tally().Total())
		}
	}
}

func TestSchedulerInvalidUTF8(t *testing.T) {
	s := NewScheduler("ok\xff")
	for range 3 {
		if _, err := s.Tick(); !errors.Is(err, ErrInvalidUTF8) {
			t.Fatalf("err=%v want ErrInvalidUTF8", err)
		}
	}
	if s.Tally().Total() != 0 || s.Done() {
		t.Fatalf("invalid text made progress")
	}
}

func TestSchedulerRunClosedTicks(t *testing.T) {
	ticks := make(chan time.Time, 2)
	ticks <- time.Time{}
	ticks <- time.Time{}
	close(ticks)

	s := NewScheduler("abc")
	_, err := s.Run(context.Background(), ticks, nil)
	if !errors.Is(err, ErrInvalidState) {
		t.Fatalf("err=%v want ErrInvalidState", err)
	}
	// both ticks were applied before the close was seen
	if s.Tally().Total() != 2 {
		t.Fatalf("tallied %d symbols, want 2", s.Tally().Total())
	}
}
