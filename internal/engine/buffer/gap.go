package buffer

const minGap = 128

// gapBuffer stores runes with a movable gap at the edit point.
// Runes live in buf[:gapStart] and buf[gapEnd:].
type gapBuffer struct {
	buf      []rune
	gapStart int
	gapEnd   int
}

func newGapBuffer(runes []rune) *gapBuffer {
	size := len(runes) + minGap
	g := &gapBuffer{buf: make([]rune, size)}
	copy(g.buf, runes)
	g.gapStart = len(runes)
	g.gapEnd = size
	return g
}

// Len returns the number of runes stored.
func (g *gapBuffer) Len() int {
	return len(g.buf) - (g.gapEnd - g.gapStart)
}

// At returns the rune at offset. The offset must be in [0, Len()).
func (g *gapBuffer) At(offset int) rune {
	if offset < g.gapStart {
		return g.buf[offset]
	}
	return g.buf[g.gapEnd+(offset-g.gapStart)]
}

// Slice copies the runes in [start, end).
func (g *gapBuffer) Slice(start, end int) []rune {
	out := make([]rune, 0, end-start)
	if start < g.gapStart {
		out = append(out, g.buf[start:min(end, g.gapStart)]...)
	}
	if end > g.gapStart {
		from := max(start, g.gapStart) - g.gapStart + g.gapEnd
		to := end - g.gapStart + g.gapEnd
		out = append(out, g.buf[from:to]...)
	}
	return out
}

// Replace swaps [start, end) for runes. The range must already be valid.
func (g *gapBuffer) Replace(start, end int, runes []rune) {
	g.moveGap(start)
	g.gapEnd += end - start
	g.ensureGap(len(runes))
	copy(g.buf[g.gapStart:], runes)
	g.gapStart += len(runes)
}

func (g *gapBuffer) moveGap(pos int) {
	switch {
	case pos < g.gapStart:
		n := g.gapStart - pos
		copy(g.buf[g.gapEnd-n:g.gapEnd], g.buf[pos:g.gapStart])
		g.gapStart -= n
		g.gapEnd -= n
	case pos > g.gapStart:
		n := pos - g.gapStart
		copy(g.buf[g.gapStart:g.gapStart+n], g.buf[g.gapEnd:g.gapEnd+n])
		g.gapStart += n
		g.gapEnd += n
	}
}

func (g *gapBuffer) ensureGap(n int) {
	if g.gapEnd-g.gapStart >= n {
		return
	}
	size := len(g.buf)*2 + n
	next := make([]rune, size)
	copy(next, g.buf[:g.gapStart])
	suffix := len(g.buf) - g.gapEnd
	copy(next[size-suffix:], g.buf[g.gapEnd:])
	g.gapEnd = size - suffix
	g.buf = next
}

// String returns the stored text.
func (g *gapBuffer) String() string {
	return string(g.buf[:g.gapStart]) + string(g.buf[g.gapEnd:])
}
