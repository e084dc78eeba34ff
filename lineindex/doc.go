// Package lineindex converts between flat character offsets into a text and
// (line, column) positions.
//
// An Index scans its text once and keeps the offset of the first character of
// every line. FromIndex answers offset to position queries with a binary
// search over that table, ToIndex answers the inverse with a direct lookup.
//
//	idx := lineindex.New("ABC\nDEF")
//	pos, ok := idx.FromIndex(5) // {Line: 2, Col: 2}, true
//	off := idx.ToIndex(2, 2)    // 5
//
// Lines and columns are 1-based unless Options.ZeroOrigin is set. Offsets and
// columns are counted in Unicode code points by default; Options.Unit selects
// UTF-8 bytes or UTF-16 code units instead.
//
// Queries never fail with an error: FromIndex reports out of range offsets
// with a false second result and ToIndex returns -1 for positions that do not
// exist in the text. An Index is immutable and can be shared between
// goroutines.
package lineindex
