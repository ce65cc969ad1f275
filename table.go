package huffman

import (
	"cmp"
	"fmt"
	"io"
	"slices"
	"strings"
	"unicode/utf8"
)

// singleSymbolCode is assigned to the only symbol of a one-leaf tree. An empty
// code would make every such input encode to zero bits.
const singleSymbolCode = "0"

// Entry is one row of a CodeTable.
type Entry struct {
	Symbol rune
	Weight int
	Code   string // bit string of '0' and '1'
}

// CodeTable maps every symbol of the input to its weight and code.
// A CodeTable is created once from a finished tree and never modified.
type CodeTable struct {
	entries []Entry      // tree traversal order, left before right
	index   map[rune]int // symbol -> position in entries
}

// Generate derives the code table from a finished Builder. It returns
// ErrNotReady if the Builder has not reached Done.
func Generate(b *Builder) (*CodeTable, error) {
	root, err := b.Root()
	if err != nil {
		return nil, err
	}
	return NewCodeTable(root), nil
}

// NewCodeTable walks the tree rooted at root depth-first, appending '0' for
// each left edge and '1' for each right edge. A nil root yields an empty
// table; a lone leaf gets the code "0".
func NewCodeTable(root *Node) *CodeTable {
	t := &CodeTable{index: make(map[rune]int)}
	if root == nil {
		return t
	}
	if root.IsLeaf() {
		t.add(root, singleSymbolCode)
		return t
	}

	path := make([]byte, 0, root.Depth())
	var walk func(n *Node)
	walk = func(n *Node) {
		if n.IsLeaf() {
			t.add(n, string(path))
			return
		}
		path = append(path, '0')
		walk(n.left)
		path[len(path)-1] = '1'
		walk(n.right)
		path = path[:len(path)-1]
	}
	walk(root)
	return t
}

func (t *CodeTable) add(n *Node, code string) {
	t.index[n.symbol] = len(t.entries)
	t.entries = append(t.entries, Entry{Symbol: n.symbol, Weight: n.weight, Code: code})
}

// Len returns the number of symbols in the table.
func (t *CodeTable) Len() int { return len(t.entries) }

// Lookup returns the entry for r.
func (t *CodeTable) Lookup(r rune) (Entry, bool) {
	i, ok := t.index[r]
	if !ok {
		return Entry{}, false
	}
	return t.entries[i], true
}

// Entries returns the entries in tree order, left to right.
func (t *CodeTable) Entries() []Entry { return slices.Clone(t.entries) }

// Sorted returns the entries by descending weight, then ascending symbol.
func (t *CodeTable) Sorted() []Entry {
	out := slices.Clone(t.entries)
	slices.SortFunc(out, func(a, b Entry) int {
		if c := cmp.Compare(b.Weight, a.Weight); c != 0 {
			return c
		}
		return cmp.Compare(a.Symbol, b.Symbol)
	})
	return out
}

// EncodedLen returns the number of bits needed to encode the text the table
// was built from: the sum of weight times code length over all symbols.
func (t *CodeTable) EncodedLen() int {
	var bits int
	for _, e := range t.entries {
		bits += e.Weight * len(e.Code)
	}
	return bits
}

// Encode returns the concatenated codes of the runes of s. It fails with
// ErrUnknownSymbol on the first rune not in the table, and with
// ErrInvalidUTF8 if s is not valid UTF-8.
func (t *CodeTable) Encode(s string) (string, error) {
	if !utf8.ValidString(s) {
		return "", ErrInvalidUTF8
	}
	var sb strings.Builder
	for i, r := range s {
		e, ok := t.Lookup(r)
		if !ok {
			return "", fmt.Errorf("%q at offset %d: %w", r, i, ErrUnknownSymbol)
		}
		sb.WriteString(e.Code)
	}
	return sb.String(), nil
}

// WriteTo writes the table as tab-separated symbol, weight and code rows,
// heaviest symbol first. It implements io.WriterTo; the returned count is
// the number of bytes w accepted.
func (t *CodeTable) WriteTo(w io.Writer) (int64, error) {
	var total int64
	n, err := fmt.Fprintf(w, "symbol\tweight\tcode\n")
	total += int64(n)
	if err != nil {
		return total, err
	}
	for _, e := range t.Sorted() {
		n, err = fmt.Fprintf(w, "%q\t%d\t%s\n", e.Symbol, e.Weight, e.Code)
		total += int64(n)
		if err != nil {
			return total, err
		}
	}
	return total, nil
}
