package lineindex

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Location is a position argument for ToIndexOf. It is implemented by
// Position, LineColumn, Pair and Invalid.
type Location interface {
	lineCol() (line, col int, ok bool)
}

// LineColumn is a position spelled with a "column" field.
type LineColumn struct {
	Line   int `json:"line" yaml:"line"`
	Column int `json:"column" yaml:"column"`
}

func (l LineColumn) lineCol() (int, int, bool) {
	return l.Line, l.Column, true
}

// Pair is a [line, col] pair. A pair with fewer than two elements has no
// column and never resolves to an index.
type Pair []int

func (p Pair) lineCol() (int, int, bool) {
	if len(p) < 2 {
		return 0, 0, false
	}
	return p[0], p[1], true
}

// Invalid is a location that could not be decoded. It never resolves to an
// index.
type Invalid struct {
	Err error
}

func (Invalid) lineCol() (int, int, bool) {
	return 0, 0, false
}

// DecodeLocation converts a generic decoded value into a Location. It accepts
// a map with "line" and "col" or "column" keys, or a sequence of [line, col].
// When decoding fails an Invalid location is returned along with the error.
func DecodeLocation(v any) (Location, error) {
	loc, err := decodeLocation(v)
	if err != nil {
		return Invalid{Err: err}, err
	}
	return loc, nil
}

func decodeLocation(v any) (Location, error) {
	switch v := v.(type) {
	case Location:
		return v, nil
	case map[string]any:
		rawLine, ok := v["line"]
		if !ok {
			return nil, fmt.Errorf("%w: missing line", ErrInvalidLocation)
		}
		line, err := DecodeInt(rawLine)
		if err != nil {
			return nil, fmt.Errorf("line: %w", err)
		}

		if rawCol, ok := v["col"]; ok {
			col, err := DecodeInt(rawCol)
			if err != nil {
				return nil, fmt.Errorf("col: %w", err)
			}
			return Position{Line: line, Col: col}, nil
		}
		if rawCol, ok := v["column"]; ok {
			col, err := DecodeInt(rawCol)
			if err != nil {
				return nil, fmt.Errorf("column: %w", err)
			}
			return LineColumn{Line: line, Column: col}, nil
		}
		return nil, ErrMissingColumn
	case []any:
		if len(v) < 2 {
			return nil, ErrMissingColumn
		}
		pair := make(Pair, 2)
		for i := range pair {
			n, err := DecodeInt(v[i])
			if err != nil {
				return nil, fmt.Errorf("element %d: %w", i, err)
			}
			pair[i] = n
		}
		return pair, nil
	case []int:
		if len(v) < 2 {
			return nil, ErrMissingColumn
		}
		return Pair(v), nil
	default:
		return nil, fmt.Errorf("%w: unsupported value %T", ErrInvalidLocation, v)
	}
}

// DecodeInt converts a decoded number into an int. NaN and non-numeric
// values return ErrNotANumber, fractional, infinite or out of range values
// ErrNotAnInteger.
func DecodeInt(v any) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int64:
		return int(n), nil
	case int32:
		return int(n), nil
	case uint64:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d is out of range", ErrNotAnInteger, n)
		}
		return int(n), nil
	case uint32:
		return int(n), nil
	case uint:
		if n > math.MaxInt {
			return 0, fmt.Errorf("%w: %d is out of range", ErrNotAnInteger, n)
		}
		return int(n), nil
	case float64:
		if math.IsNaN(n) {
			return 0, ErrNotANumber
		}
		if math.IsInf(n, 0) || n != math.Trunc(n) || n > math.MaxInt || n < math.MinInt {
			return 0, fmt.Errorf("%w: %v", ErrNotAnInteger, n)
		}
		return int(n), nil
	default:
		return 0, fmt.Errorf("%w: %v", ErrNotANumber, v)
	}
}

// ParseLocation parses "line:col" or "line,col".
func ParseLocation(s string) (Location, error) {
	fields := strings.FieldsFunc(strings.TrimSpace(s), func(r rune) bool {
		return r == ':' || r == ','
	})

	pair := make(Pair, 0, 2)
	for _, field := range fields {
		n, err := strconv.Atoi(strings.TrimSpace(field))
		if err != nil {
			err = fmt.Errorf("%w: %q", ErrNotANumber, field)
			return Invalid{Err: err}, err
		}
		pair = append(pair, n)
	}

	switch {
	case len(pair) < 2:
		return Invalid{Err: ErrMissingColumn}, ErrMissingColumn
	case len(pair) > 2:
		err := fmt.Errorf("%w: %q has more than two fields", ErrInvalidLocation, s)
		return Invalid{Err: err}, err
	}
	return pair, nil
}
