package lineindex

import (
	"fmt"
	"math"
	"sort"
	"unicode/utf8"
)

// Options configures an Index.
// The zero value gives 1-based lines and columns counted in runes.
type Options struct {
	ZeroOrigin bool
	Unit       Unit
}

// Origin returns the number of the first line and column, 0 or 1.
func (o Options) Origin() int {
	if o.ZeroOrigin {
		return 0
	}
	return 1
}

// Position is a line and column pair numbered from the origin of the Index
// that produced it.
type Position struct {
	Line int `json:"line" yaml:"line"`
	Col  int `json:"col" yaml:"col"`
}

// String returns "line:col"
func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Col)
}

func (p Position) lineCol() (int, int, bool) {
	return p.Line, p.Col, true
}

// Index maps offsets in a text to line and column positions and back.
type Index struct {
	source     string
	lineStarts []int // unit offset of the first character of each line
	byteStarts []int // byte offset of the first character of each line
	size       int   // length of source in units
	origin     int
	unit       Unit
}

// New builds an Index for text. Only the first options value is used.
func New(text string, options ...Options) *Index {
	opts := Options{}
	if len(options) > 0 {
		opts = options[0]
	}

	idx := &Index{
		source:     text,
		lineStarts: []int{0},
		byteStarts: []int{0},
		origin:     opts.Origin(),
		unit:       opts.Unit,
	}

	offset := 0
	for pos := 0; pos < len(text); {
		r, size := utf8.DecodeRuneInString(text[pos:])
		pos += size
		offset += opts.Unit.width(r, size)
		if r == '\n' {
			idx.lineStarts = append(idx.lineStarts, offset)
			idx.byteStarts = append(idx.byteStarts, pos)
		}
	}
	idx.size = offset

	return idx
}

// Locate is shorthand for New(text, options...).FromIndex(index).
func Locate(text string, index int, options ...Options) (Position, bool) {
	return New(text, options...).FromIndex(index)
}

// FromIndex returns the position of the character at index.
// It reports false when index is outside [0, Len()).
func (x *Index) FromIndex(index int) (Position, bool) {
	if index < 0 || index >= x.size {
		return Position{}, false
	}

	// first line starting after index, minus one
	line := sort.Search(len(x.lineStarts), func(i int) bool {
		return x.lineStarts[i] > index
	}) - 1

	return Position{
		Line: line + x.origin,
		Col:  index - x.lineStarts[line] + x.origin,
	}, true
}

// FromFloat is FromIndex for callers holding a floating point offset.
// NaN, infinite and non-integral values report false.
func (x *Index) FromFloat(index float64) (Position, bool) {
	if math.IsNaN(index) || math.IsInf(index, 0) || index != math.Trunc(index) {
		return Position{}, false
	}
	if index < 0 || index >= float64(x.size) {
		return Position{}, false
	}
	return x.FromIndex(int(index))
}

// ToIndex returns the offset of the character at line and col, or -1 when
// the text has no such position. The column may address the line terminator
// of a line but never runs past it.
func (x *Index) ToIndex(line, col int) int {
	line -= x.origin
	col -= x.origin
	if line < 0 || col < 0 || line >= len(x.lineStarts) {
		return -1
	}

	start := x.lineStarts[line]
	end := x.size
	if line+1 < len(x.lineStarts) {
		end = x.lineStarts[line+1]
	}
	if col >= end-start {
		return -1
	}

	return start + col
}

// ToIndexOf is ToIndex for a Location. Incomplete locations return -1.
func (x *Index) ToIndexOf(loc Location) int {
	if loc == nil {
		return -1
	}
	line, col, ok := loc.lineCol()
	if !ok {
		return -1
	}
	return x.ToIndex(line, col)
}

// LineStarts returns a copy of the 0-based offset of the first character of
// every line, independent of the origin.
func (x *Index) LineStarts() []int {
	starts := make([]int, len(x.lineStarts))
	copy(starts, x.lineStarts)
	return starts
}

// LineText returns the text of line without its terminating newline.
func (x *Index) LineText(line int) (string, bool) {
	line -= x.origin
	if line < 0 || line >= len(x.byteStarts) {
		return "", false
	}

	start := x.byteStarts[line]
	end := len(x.source)
	if line+1 < len(x.byteStarts) {
		end = x.byteStarts[line+1] - 1
	}
	return x.source[start:end], true
}

// LineCount returns the number of lines, which is the number of newlines
// plus one.
func (x *Index) LineCount() int {
	return len(x.lineStarts)
}

// Len returns the length of the text in units.
func (x *Index) Len() int {
	return x.size
}

// Origin returns the number of the first line and column.
func (x *Index) Origin() int {
	return x.origin
}

// Unit returns the unit offsets and columns are counted in.
func (x *Index) Unit() Unit {
	return x.unit
}

// Source returns the indexed text.
func (x *Index) Source() string {
	return x.source
}
