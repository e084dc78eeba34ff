package main

import "errors"

// Sentinel errors
var (
	ErrIndexNotFound   = errors.New("index is outside the text")
	ErrInvalidPosition = errors.New("position does not exist in the text")
	ErrNoQueries       = errors.New("query file has no indexes or positions")
	ErrInvalidFlag     = errors.New("invalid flag value")
)
