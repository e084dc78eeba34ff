package lineindex

import "errors"

// Sentinel errors returned while decoding caller supplied values.
// Queries on an Index itself never return errors.
var (
	ErrInvalidLocation = errors.New("invalid location")
	ErrMissingColumn   = errors.New("location has no column")
	ErrNotANumber      = errors.New("value is not a number")
	ErrNotAnInteger    = errors.New("value is not an integer")
	ErrUnknownUnit     = errors.New("unknown unit")
)
