package lineindex

import (
	"fmt"
	"unicode/utf16"
)

// Unit is the unit offsets and columns are counted in.
type Unit int

const (
	// Rune counts Unicode code points. A multi-byte character is one step.
	Rune Unit = iota
	// Byte counts UTF-8 bytes, the unit of Go string indexing.
	Byte
	// UTF16 counts UTF-16 code units, as JavaScript and LSP clients do.
	UTF16
)

// String returns the name of the unit
func (u Unit) String() string {
	switch u {
	case Rune:
		return "rune"
	case Byte:
		return "byte"
	case UTF16:
		return "utf16"
	default:
		return "unknown"
	}
}

// ParseUnit returns the Unit for a name accepted by String.
// An empty name selects Rune.
func ParseUnit(name string) (Unit, error) {
	switch name {
	case "", "rune":
		return Rune, nil
	case "byte":
		return Byte, nil
	case "utf16":
		return UTF16, nil
	default:
		return Rune, fmt.Errorf("%w: %q: must be one of rune, byte, utf16", ErrUnknownUnit, name)
	}
}

// width returns how many units a decoded rune of size bytes occupies.
func (u Unit) width(r rune, size int) int {
	switch u {
	case Byte:
		return size
	case UTF16:
		if n := utf16.RuneLen(r); n > 0 {
			return n
		}
		return 1
	default:
		return 1
	}
}
