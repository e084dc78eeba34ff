package main

import (
	"fmt"

	"github.com/shibukawa/linecolumn/lineindex"
)

// IndexCmd represents the index command
type IndexCmd struct {
	File      string   `arg:"" help:"Text file to index, or - for standard input"`
	Positions []string `arg:"" help:"Positions to convert, written as line:col or line,col"`
}

// Run executes the index command
func (cmd *IndexCmd) Run(ctx *Context) error {
	idx, err := buildIndex(ctx, cmd.File)
	if err != nil {
		return err
	}

	file := displayName(cmd.File)
	results := make([]Result, 0, len(cmd.Positions))
	invalid := 0

	for _, raw := range cmd.Positions {
		loc, err := lineindex.ParseLocation(raw)
		result := resolveLocation(ctx, idx, file, raw, loc)
		if err != nil {
			result.Error = err.Error()
		}
		if !result.Found {
			invalid++
		}
		results = append(results, result)
	}

	if err := writeResults(ctx, results); err != nil {
		return err
	}

	if invalid > 0 {
		return fmt.Errorf("%w: %d of %d positions", ErrInvalidPosition, invalid, len(results))
	}

	return nil
}

// resolveLocation converts loc to an index. The reported position is
// recomputed from the index so every spelling of a location renders the same.
func resolveLocation(ctx *Context, idx *lineindex.Index, file, query string, loc lineindex.Location) Result {
	index := idx.ToIndexOf(loc)
	if index < 0 {
		ctx.Logger.Debug().Str("query", query).Int("lines", idx.LineCount()).Msg("position does not exist")
		return newResult(ctx, idx, file, query, -1, lineindex.Position{}, false)
	}

	pos, ok := idx.FromIndex(index)
	return newResult(ctx, idx, file, query, index, pos, ok)
}
