// Package huffman builds Huffman coding trees one merge at a time.
//
// # Overview
//
// Huffman coding assigns each distinct symbol of a text a prefix-free bit
// string whose length shrinks as the symbol's frequency grows. The tree is
// built by repeatedly merging the two lightest elements of a forest until a
// single root remains; codes are read off the root-to-leaf paths.
//
// This package exposes that reduction as a resumable state machine so a
// caller can pace it (one merge per animation frame, one per timer tick, or
// all at once) and observe the forest between steps.
//
// # Pipeline
//
//	text -> Tally -> leaves -> Pool -> Builder.Step ... -> root -> CodeTable
//
//   - Tally counts symbols and yields leaves in first-occurrence order.
//   - Pool keeps the forest ordered by weight, ties broken by insertion order.
//   - Builder merges the two smallest elements per Step until one remains.
//   - CodeTable walks the finished tree, '0' for left and '1' for right.
//   - Scheduler drives all of the above one unit of work per tick.
//
// # Determinism
//
// Equal weights are ordered by insertion: leaves in the order their symbol
// first appears in the text, merged nodes in the order they were created.
// The first node extracted becomes the left child. Identical input therefore
// always yields an identical tree and table.
//
// A text with a single distinct symbol produces a one-leaf tree with no
// merges. That symbol is assigned the code "0" so encoded output always
// spends one bit per input symbol.
//
// # Basic Usage
//
//	b := huffman.NewBuilder()
//	if err := b.Load(huffman.TallyString("aaabbc")); err != nil {
//	    return err
//	}
//	for b.State() == huffman.Building {
//	    if _, err := b.Step(); err != nil {
//	        return err
//	    }
//	}
//	tbl, err := huffman.Generate(b)
//	if err != nil {
//	    return err
//	}
//	bits, _ := tbl.Encode("aaabbc")
//
// Or, paced by a ticker:
//
//	s := huffman.NewScheduler("aaabbc")
//	ticker := time.NewTicker(80 * time.Millisecond)
//	defer ticker.Stop()
//	tbl, err := s.Run(ctx, ticker.C, func(ev huffman.Event) { draw(ev) })
//
// # Concurrency
//
// None of the types are safe for concurrent use. All state lives in values
// owned by the caller; discarding a Builder or Scheduler at any point and
// starting a new one is always valid.
package huffman
