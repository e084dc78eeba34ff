package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/hashicorp/go-multierror"
	"github.com/shibukawa/linecolumn/lineindex"
)

// BatchCmd represents the batch command
type BatchCmd struct {
	File    string `arg:"" help:"Text file to index, or - for standard input"`
	Queries string `arg:"" help:"YAML or JSON file listing indexes and positions" type:"existingfile"`
	Strict  bool   `help:"Fail when a query cannot be decoded"`
}

// QueryFile is the layout of a batch query file. Positions may be written as
// {line, col}, {line, column} or [line, col].
type QueryFile struct {
	Indexes   []any `yaml:"indexes"`
	Positions []any `yaml:"positions"`
}

// Run executes the batch command
func (cmd *BatchCmd) Run(ctx *Context) error {
	queries, err := loadQueryFile(cmd.Queries)
	if err != nil {
		return err
	}

	idx, err := buildIndex(ctx, cmd.File)
	if err != nil {
		return err
	}

	results, decodeErr := runBatch(ctx, idx, displayName(cmd.File), queries)

	if err := writeResults(ctx, results); err != nil {
		return err
	}

	if decodeErr != nil {
		if cmd.Strict {
			return decodeErr
		}
		ctx.Logger.Warn().Err(decodeErr).Msg("some queries could not be decoded")
	}

	return nil
}

// loadQueryFile parses a batch query file
func loadQueryFile(path string) (*QueryFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read query file: %w", err)
	}

	var queries QueryFile
	if err := yaml.UnmarshalWithOptions(data, &queries, yaml.Strict()); err != nil {
		return nil, fmt.Errorf("failed to parse query file: %w", err)
	}

	if len(queries.Indexes) == 0 && len(queries.Positions) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrNoQueries, path)
	}

	return &queries, nil
}

// runBatch resolves every query. Decoding failures are collected and the
// affected queries are reported as not found.
func runBatch(ctx *Context, idx *lineindex.Index, file string, queries *QueryFile) ([]Result, error) {
	var errs *multierror.Error
	results := make([]Result, 0, len(queries.Indexes)+len(queries.Positions))

	for i, v := range queries.Indexes {
		query := formatQuery(v)
		pos, ok, err := fromValue(idx, v)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("indexes[%d]: %w", i, err))
			results = append(results, Result{File: file, Query: query, Index: -1, Error: err.Error()})
			continue
		}

		index := -1
		if ok {
			index = idx.ToIndex(pos.Line, pos.Col)
		}
		results = append(results, newResult(ctx, idx, file, query, index, pos, ok))
	}

	for i, v := range queries.Positions {
		query := formatQuery(v)
		loc, err := lineindex.DecodeLocation(v)
		result := resolveLocation(ctx, idx, file, query, loc)
		if err != nil {
			errs = multierror.Append(errs, fmt.Errorf("positions[%d]: %w", i, err))
			result.Error = err.Error()
		}
		results = append(results, result)
	}

	return results, errs.ErrorOrNil()
}

// fromValue locates a decoded index value
func fromValue(idx *lineindex.Index, v any) (lineindex.Position, bool, error) {
	n, err := lineindex.DecodeInt(v)
	if err != nil {
		return lineindex.Position{}, false, err
	}

	pos, ok := idx.FromIndex(n)
	return pos, ok, nil
}

// formatQuery renders a decoded query value in YAML flow style
func formatQuery(v any) string {
	data, err := yaml.MarshalWithOptions(v, yaml.Flow(true))
	if err != nil {
		return fmt.Sprint(v)
	}
	return strings.TrimSpace(string(data))
}
