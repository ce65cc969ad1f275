package huffman

import "errors"

var (
	// ErrEmptyPool indicates an extraction from a pool holding fewer than two elements.
	ErrEmptyPool = errors.New("huffman: fewer than two elements in pool")

	// ErrInvalidState indicates a Builder or Scheduler call made in the wrong state.
	ErrInvalidState = errors.New("huffman: invalid builder state")

	// ErrNotReady indicates the tree was requested before construction finished.
	ErrNotReady = errors.New("huffman: tree not complete")

	// ErrInvalidUTF8 indicates input text that is not valid UTF-8 and so has no
	// well-defined sequence of symbols.
	ErrInvalidUTF8 = errors.New("huffman: text is not valid UTF-8")

	// ErrUnknownSymbol indicates an encode of a symbol the table has no code for.
	ErrUnknownSymbol = errors.New("huffman: symbol not in code table")
)
