package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shibukawa/linecolumn/lineindex"
)

// LocateCmd represents the locate command
type LocateCmd struct {
	File    string   `arg:"" help:"Text file to index, or - for standard input"`
	Indexes []string `arg:"" help:"Character indexes to convert (use -- before negative values)"`
}

// Run executes the locate command
func (cmd *LocateCmd) Run(ctx *Context) error {
	idx, err := buildIndex(ctx, cmd.File)
	if err != nil {
		return err
	}

	file := displayName(cmd.File)
	results := make([]Result, 0, len(cmd.Indexes))
	missing := 0

	for _, raw := range cmd.Indexes {
		result := locateIndex(ctx, idx, file, raw)
		if !result.Found {
			missing++
		}
		results = append(results, result)
	}

	if err := writeResults(ctx, results); err != nil {
		return err
	}

	if missing > 0 {
		return fmt.Errorf("%w: %d of %d indexes", ErrIndexNotFound, missing, len(results))
	}

	return nil
}

// locateIndex resolves one command line index. Values that do not parse as
// numbers, including NaN, are reported as not found.
func locateIndex(ctx *Context, idx *lineindex.Index, file, raw string) Result {
	n, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return Result{File: file, Query: raw, Index: -1, Error: lineindex.ErrNotANumber.Error()}
	}

	pos, ok := idx.FromFloat(n)
	if !ok {
		ctx.Logger.Debug().Str("query", raw).Int("length", idx.Len()).Msg("index out of range")
		return newResult(ctx, idx, file, raw, -1, pos, false)
	}

	return newResult(ctx, idx, file, raw, int(n), pos, true)
}
