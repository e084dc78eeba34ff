package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/goccy/go-yaml"
	"github.com/shibukawa/linecolumn/lineindex"
)

// Result is one answered query
type Result struct {
	File     string              `json:"file" yaml:"file"`
	Query    string              `json:"query" yaml:"query"`
	Index    int                 `json:"index" yaml:"index"`
	Position *lineindex.Position `json:"position,omitempty" yaml:"position,omitempty"`
	Found    bool                `json:"found" yaml:"found"`
	Text     string              `json:"text,omitempty" yaml:"text,omitempty"`
	Error    string              `json:"error,omitempty" yaml:"error,omitempty"`
}

// LineTable describes the line start table of a file
type LineTable struct {
	File       string `json:"file" yaml:"file"`
	Unit       string `json:"unit" yaml:"unit"`
	Origin     int    `json:"origin" yaml:"origin"`
	Length     int    `json:"length" yaml:"length"`
	LineStarts []int  `json:"lineStarts" yaml:"line_starts"`
}

var (
	fileColor     = color.New(color.FgCyan)
	positionColor = color.New(color.FgGreen, color.Bold)
	failureColor  = color.New(color.FgRed)
	contextColor  = color.New(color.Faint)
)

// newResult fills a Result for a resolved or unresolved query
func newResult(ctx *Context, idx *lineindex.Index, file, query string, index int, pos lineindex.Position, found bool) Result {
	result := Result{
		File:  file,
		Query: query,
		Index: index,
		Found: found,
	}
	if !found {
		return result
	}

	result.Position = &pos
	if ctx.Config.Output.Context {
		if text, ok := idx.LineText(pos.Line); ok {
			result.Text = text
		}
	}

	return result
}

// writeResults renders results in the configured format
func writeResults(ctx *Context, results []Result) error {
	switch ctx.Config.Output.Format {
	case "json":
		return writeJSON(ctx.Stdout, results)
	case "yaml":
		return writeYAML(ctx.Stdout, results)
	default:
		for _, r := range results {
			writeResultText(ctx.Stdout, r)
		}
		return nil
	}
}

// writeResultText prints "file:line:col: index N" or the failure reason
func writeResultText(w io.Writer, r Result) {
	fileColor.Fprint(w, r.File)
	fmt.Fprint(w, ":")

	if !r.Found {
		reason := r.Error
		if reason == "" {
			reason = "not found"
		}
		failureColor.Fprintf(w, "%s: %s\n", r.Query, reason)
		return
	}

	positionColor.Fprintf(w, "%d:%d", r.Position.Line, r.Position.Col)
	fmt.Fprintf(w, ": index %d\n", r.Index)
	if r.Text != "" {
		contextColor.Fprintf(w, "    | %s\n", r.Text)
	}
}

// writeLineTable renders the line start table in the configured format
func writeLineTable(ctx *Context, table LineTable) error {
	switch ctx.Config.Output.Format {
	case "json":
		return writeJSON(ctx.Stdout, table)
	case "yaml":
		return writeYAML(ctx.Stdout, table)
	default:
		for i, start := range table.LineStarts {
			positionColor.Fprintf(ctx.Stdout, "%d", i+table.Origin)
			fmt.Fprintf(ctx.Stdout, "\t%d\n", start)
		}
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(v); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}

func writeYAML(w io.Writer, v any) error {
	data, err := yaml.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to encode YAML: %w", err)
	}
	_, err = w.Write(data)
	return err
}
