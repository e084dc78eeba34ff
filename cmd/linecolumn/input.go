package main

import (
	"fmt"
	"io"
	"os"

	"github.com/shibukawa/linecolumn/lineindex"
)

// stdinPath selects standard input instead of a file
const stdinPath = "-"

// readSource reads the text to index from a file or standard input
func readSource(ctx *Context, path string) (string, error) {
	var (
		data []byte
		err  error
	)

	if path == stdinPath {
		data, err = io.ReadAll(ctx.Stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", displayName(path), err)
	}

	return string(data), nil
}

// buildIndex reads path and indexes it with the configured options
func buildIndex(ctx *Context, path string) (*lineindex.Index, error) {
	text, err := readSource(ctx, path)
	if err != nil {
		return nil, err
	}

	opts, err := ctx.Config.IndexOptions()
	if err != nil {
		return nil, err
	}

	idx := lineindex.New(text, opts)
	ctx.Logger.Debug().
		Str("file", displayName(path)).
		Int("lines", idx.LineCount()).
		Int("length", idx.Len()).
		Str("unit", idx.Unit().String()).
		Int("origin", idx.Origin()).
		Msg("index built")

	return idx, nil
}

func displayName(path string) string {
	if path == stdinPath {
		return "<stdin>"
	}
	return path
}
