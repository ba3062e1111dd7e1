package wql

import "strings"

// cursor is a forward-only view over the query runes. Every read is
// destructive; there is no peeking and no backtracking.
type cursor struct {
	src []rune
	pos int
}

func newCursor(s string) *cursor {
	return &cursor{src: []rune(s)}
}

// next consumes and returns one rune. ok is false once the input is
// exhausted.
func (c *cursor) next() (r rune, ok bool) {
	if c.pos >= len(c.src) {
		return 0, false
	}
	r = c.src[c.pos]
	c.pos++
	return r, true
}

// takeWhile consumes runes satisfying pred and returns them. The first
// failing rune, when one exists, is consumed too and discarded without
// being collected; that discard is how single-character delimiters
// between tokens disappear. At end of input nothing extra is consumed.
func (c *cursor) takeWhile(pred func(rune) bool) string {
	var b strings.Builder
	for {
		r, ok := c.next()
		if !ok || !pred(r) {
			return b.String()
		}
		b.WriteRune(r)
	}
}
