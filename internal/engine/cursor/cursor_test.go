package cursor

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/dshills/codeditor/internal/engine/buffer"
)

func TestSelectionBasics(t *testing.T) {
	sel := NewSelection(8, 3)

	assert.False(t, sel.IsEmpty())
	assert.False(t, sel.IsForward())
	assert.Equal(t, 3, sel.Start())
	assert.Equal(t, 8, sel.End())
	assert.Equal(t, 5, sel.Len())
	assert.Equal(t, buffer.Range{Start: 3, End: 8}, sel.Range())
	assert.Equal(t, NewCursorSelection(3), sel.Collapse())
	assert.Equal(t, "Selection(8->3)", sel.String())
	assert.Equal(t, "Cursor(4)", NewCursorSelection(4).String())
}

func TestSelectionClamp(t *testing.T) {
	assert.Equal(t, NewSelection(0, 5), NewSelection(-2, 9).Clamp(5))
	assert.Equal(t, NewRangeSelection(buffer.Range{Start: 1, End: 2}), NewSelection(1, 2).Clamp(5))
}

func TestTransformOffset(t *testing.T) {
	b := buffer.NewBufferFromString("0123456789")
	del := b.Replace(2, 5, "")
	b = buffer.NewBufferFromString("0123456789")
	ins := b.Replace(4, 4, "abc")
	b = buffer.NewBufferFromString("0123456789")
	rep := b.Replace(2, 6, "x")

	tests := []struct {
		name   string
		offset int
		change buffer.Change
		want   int
	}{
		{"before delete", 1, del, 1},
		{"inside delete", 3, del, 2},
		{"after delete", 7, del, 4},
		{"at insert", 4, ins, 7},
		{"before insert", 3, ins, 3},
		{"after insert", 6, ins, 9},
		{"inside replace", 4, rep, 3},
		{"after replace", 8, rep, 5},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, TransformOffset(tt.offset, tt.change), tt.name)
	}
}

func TestTransformSelectionBias(t *testing.T) {
	b := buffer.NewBufferFromString("hello")
	ins := b.Insert(2, "XX")

	got := TransformSelection(NewCursorSelection(2), ins)
	assert.Equal(t, NewSelection(2, 4), got)

	got = TransformSelection(NewSelection(0, 5), ins)
	assert.Equal(t, NewSelection(0, 7), got)

	assert.Equal(t, 2, TransformOffsetSticky(2, ins, true))
	assert.Equal(t, 4, TransformOffsetSticky(2, ins, false))
}
