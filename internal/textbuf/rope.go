package textbuf

import (
	"strings"
	"unicode/utf8"

	"github.com/quellen/quill/internal/textutil"
)

// The rope is a balanced binary tree of string chunks. Every node carries a
// summary of its subtree (bytes, runes, newlines) so line and offset lookups
// descend in O(log n) instead of scanning the document.

const (
	maxLeafBytes = 512
	// Trees degraded past this height by repeated edits are rebuilt flat.
	rebuildHeight = 48
)

type summary struct {
	bytes    int
	runes    int
	newlines int
}

func (s summary) add(o summary) summary {
	return summary{
		bytes:    s.bytes + o.bytes,
		runes:    s.runes + o.runes,
		newlines: s.newlines + o.newlines,
	}
}

func summarize(s string) summary {
	return summary{
		bytes:    len(s),
		runes:    utf8.RuneCountInString(s),
		newlines: strings.Count(s, "\n"),
	}
}

// node is either a leaf (leaf set, left/right nil) or an internal node with
// exactly two non-empty children.
type node struct {
	sum    summary
	left   *node
	right  *node
	leaf   string
	height int
}

func newLeaf(s string) *node {
	return &node{sum: summarize(s), leaf: s, height: 1}
}

func (n *node) isLeaf() bool { return n.left == nil }

// concat joins two subtrees, merging adjacent small leaves.
func concat(a, b *node) *node {
	if a == nil || a.sum.runes == 0 {
		return b
	}
	if b == nil || b.sum.runes == 0 {
		return a
	}
	if a.isLeaf() && b.isLeaf() && a.sum.bytes+b.sum.bytes <= maxLeafBytes {
		return newLeaf(a.leaf + b.leaf)
	}
	return &node{
		sum:    a.sum.add(b.sum),
		left:   a,
		right:  b,
		height: max(a.height, b.height) + 1,
	}
}

// split divides n at the given rune offset into left and right subtrees.
// Either result may be nil when its side is empty.
func split(n *node, off int) (*node, *node) {
	if n == nil {
		return nil, nil
	}
	if n.isLeaf() {
		byteOff := textutil.RuneIndexToByteOffset(n.leaf, off)
		var l, r *node
		if byteOff > 0 {
			l = newLeaf(n.leaf[:byteOff])
		}
		if byteOff < len(n.leaf) {
			r = newLeaf(n.leaf[byteOff:])
		}
		return l, r
	}
	if off <= n.left.sum.runes {
		ll, lr := split(n.left, off)
		return ll, concat(lr, n.right)
	}
	rl, rr := split(n.right, off-n.left.sum.runes)
	return concat(n.left, rl), rr
}

// buildTree constructs a balanced rope from text. Empty text yields nil.
func buildTree(text string) *node {
	if text == "" {
		return nil
	}
	return buildFromChunks(chunkText(text))
}

func buildFromChunks(chunks []string) *node {
	if len(chunks) == 1 {
		return newLeaf(chunks[0])
	}
	mid := len(chunks) / 2
	return concat(buildFromChunks(chunks[:mid]), buildFromChunks(chunks[mid:]))
}

// chunkText slices text into leaf-sized pieces, cutting only on rune boundaries.
func chunkText(text string) []string {
	var chunks []string
	for len(text) > maxLeafBytes {
		cut := maxLeafBytes
		for cut > 0 && !utf8.RuneStart(text[cut]) {
			cut--
		}
		chunks = append(chunks, text[:cut])
		text = text[cut:]
	}
	return append(chunks, text)
}

// offsetOfLine returns the rune offset where the given line starts.
func offsetOfLine(n *node, line int) int {
	if n == nil || line <= 0 {
		return 0
	}
	if n.isLeaf() {
		count := 0
		runeIdx := 0
		for _, r := range n.leaf {
			runeIdx++
			if r == '\n' {
				count++
				if count == line {
					return runeIdx
				}
			}
		}
		return n.sum.runes
	}
	if line <= n.left.sum.newlines {
		return offsetOfLine(n.left, line)
	}
	return n.left.sum.runes + offsetOfLine(n.right, line-n.left.sum.newlines)
}

// newlinesBefore counts newline runes among the first off runes.
func newlinesBefore(n *node, off int) int {
	if n == nil || off <= 0 {
		return 0
	}
	if n.isLeaf() {
		if off >= n.sum.runes {
			return n.sum.newlines
		}
		count := 0
		runeIdx := 0
		for _, r := range n.leaf {
			if runeIdx >= off {
				break
			}
			if r == '\n' {
				count++
			}
			runeIdx++
		}
		return count
	}
	if off <= n.left.sum.runes {
		return newlinesBefore(n.left, off)
	}
	return n.left.sum.newlines + newlinesBefore(n.right, off-n.left.sum.runes)
}

// collect appends the rune range [start, end) of the subtree to sb.
func collect(n *node, start, end int, sb *strings.Builder) {
	if n == nil || start >= end {
		return
	}
	if n.isLeaf() {
		byteStart := textutil.RuneIndexToByteOffset(n.leaf, start)
		byteEnd := textutil.RuneIndexToByteOffset(n.leaf, end)
		sb.WriteString(n.leaf[byteStart:byteEnd])
		return
	}
	leftRunes := n.left.sum.runes
	if start < leftRunes {
		collect(n.left, start, min(end, leftRunes), sb)
	}
	if end > leftRunes {
		collect(n.right, max(start-leftRunes, 0), end-leftRunes, sb)
	}
}

// runeAtOffset returns the rune at the given rune offset.
func runeAtOffset(n *node, off int) (rune, bool) {
	if n == nil || off < 0 || off >= n.sum.runes {
		return 0, false
	}
	if n.isLeaf() {
		byteOff := textutil.RuneIndexToByteOffset(n.leaf, off)
		r, _ := utf8.DecodeRuneInString(n.leaf[byteOff:])
		return r, true
	}
	if off < n.left.sum.runes {
		return runeAtOffset(n.left, off)
	}
	return runeAtOffset(n.right, off-n.left.sum.runes)
}
