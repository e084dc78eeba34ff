package main

import (
	"bytes"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/shibukawa/linecolumn"
	"github.com/shibukawa/linecolumn/lineindex"
	"github.com/shibukawa/linecolumn/testhelper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleText = "ABCDEFG\nHIJKLMNOPQRSTU\nVWXYZ\n日本語の文字\nEnglish words"

// newTestContext builds a Context without a config file and with colors off
func newTestContext(t *testing.T, g Globals, stdin string) (*Context, *bytes.Buffer) {
	t.Helper()

	if g.Config == "" {
		g.Config = filepath.Join(t.TempDir(), "missing.yaml")
	}
	g.NoColor = true

	var stdout, stderr bytes.Buffer
	ctx, err := newContext(g, strings.NewReader(stdin), &stdout, &stderr)
	require.NoError(t, err)

	return ctx, &stdout
}

func TestNewContext(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		ctx, _ := newTestContext(t, Globals{}, "")
		opts, err := ctx.Config.IndexOptions()
		require.NoError(t, err)
		assert.Equal(t, lineindex.Options{}, opts)
		assert.Equal(t, "text", ctx.Config.Output.Format)
	})

	t.Run("flags override config", func(t *testing.T) {
		config := testhelper.WriteFile(t, "linecolumn.yaml", "origin: 1\nunit: rune\noutput:\n  format: yaml\n")
		ctx, _ := newTestContext(t, Globals{Config: config, Origin: "0", Unit: "byte", Format: "json"}, "")
		opts, err := ctx.Config.IndexOptions()
		require.NoError(t, err)
		assert.Equal(t, lineindex.Options{ZeroOrigin: true, Unit: lineindex.Byte}, opts)
		assert.Equal(t, "json", ctx.Config.Output.Format)
	})

	t.Run("invalid origin flag", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		_, err := newContext(Globals{Config: missing, Origin: "x"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorIs(t, err, ErrInvalidFlag)

		_, err = newContext(Globals{Config: missing, Origin: "2"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorIs(t, err, linecolumn.ErrConfigValidation)
	})

	t.Run("invalid unit flag", func(t *testing.T) {
		missing := filepath.Join(t.TempDir(), "missing.yaml")
		_, err := newContext(Globals{Config: missing, Unit: "grapheme"}, nil, &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorIs(t, err, lineindex.ErrUnknownUnit)
	})
}

func TestLocateCmd(t *testing.T) {
	file := testhelper.WriteFile(t, "sample.txt", sampleText)

	t.Run("text output", func(t *testing.T) {
		ctx, out := newTestContext(t, Globals{}, "")
		cmd := &LocateCmd{File: file, Indexes: []string{"15", "48", "49", "NaN", "abc"}}

		err := cmd.Run(ctx)
		require.ErrorIs(t, err, ErrIndexNotFound)
		assert.Contains(t, err.Error(), "3 of 5")

		expected := strings.Join([]string{
			file + ":2:8: index 15",
			file + ":5:13: index 48",
			file + ":49: not found",
			file + ":NaN: not found",
			file + ":abc: value is not a number",
			"",
		}, "\n")
		assert.Equal(t, expected, out.String())
	})

	t.Run("zero origin", func(t *testing.T) {
		ctx, out := newTestContext(t, Globals{Origin: "0"}, "")
		cmd := &LocateCmd{File: file, Indexes: []string{"15", "0"}}

		require.NoError(t, cmd.Run(ctx))
		assert.Equal(t, file+":1:7: index 15\n"+file+":0:0: index 0\n", out.String())
	})

	t.Run("stdin with context", func(t *testing.T) {
		config := testhelper.WriteFile(t, "linecolumn.yaml", "output:\n  context: true\n")
		ctx, out := newTestContext(t, Globals{Config: config}, sampleText)
		cmd := &LocateCmd{File: "-", Indexes: []string{"33"}}

		require.NoError(t, cmd.Run(ctx))
		assert.Equal(t, "<stdin>:4:5: index 33\n    | 日本語の文字\n", out.String())
	})

	t.Run("json output", func(t *testing.T) {
		ctx, out := newTestContext(t, Globals{Format: "json"}, "")
		cmd := &LocateCmd{File: file, Indexes: []string{"15", "-1"}}

		require.ErrorIs(t, cmd.Run(ctx), ErrIndexNotFound)

		var results []Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &results))
		require.Len(t, results, 2)
		assert.True(t, results[0].Found)
		assert.Equal(t, &lineindex.Position{Line: 2, Col: 8}, results[0].Position)
		assert.False(t, results[1].Found)
		assert.Nil(t, results[1].Position)
		assert.Equal(t, -1, results[1].Index)
	})

	t.Run("missing file", func(t *testing.T) {
		ctx, _ := newTestContext(t, Globals{}, "")
		cmd := &LocateCmd{File: filepath.Join(t.TempDir(), "nope.txt"), Indexes: []string{"1"}}
		err := cmd.Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to read")
	})
}

func TestIndexCmd(t *testing.T) {
	file := testhelper.WriteFile(t, "sample.txt", sampleText)

	t.Run("text output", func(t *testing.T) {
		ctx, out := newTestContext(t, Globals{}, "")
		cmd := &IndexCmd{File: file, Positions: []string{"2:8", "1,8", "1:9", "2"}}

		err := cmd.Run(ctx)
		require.ErrorIs(t, err, ErrInvalidPosition)
		assert.Contains(t, err.Error(), "2 of 4")

		expected := strings.Join([]string{
			file + ":2:8: index 15",
			file + ":1:8: index 7",
			file + ":1:9: not found",
			file + ":2: location has no column",
			"",
		}, "\n")
		assert.Equal(t, expected, out.String())
	})

	t.Run("utf16 unit", func(t *testing.T) {
		emoji := testhelper.WriteFile(t, "emoji.txt", "a😀b\nc")
		ctx, out := newTestContext(t, Globals{Unit: "utf16", Format: "yaml"}, "")
		cmd := &IndexCmd{File: emoji, Positions: []string{"1:4", "2:1"}}

		require.NoError(t, cmd.Run(ctx))
		assert.Contains(t, out.String(), "index: 3")
		assert.Contains(t, out.String(), "index: 5")
	})
}

func TestLinesCmd(t *testing.T) {
	file := testhelper.WriteFile(t, "sample.txt", sampleText)

	t.Run("text output", func(t *testing.T) {
		ctx, out := newTestContext(t, Globals{}, "")
		require.NoError(t, (&LinesCmd{File: file}).Run(ctx))
		assert.Equal(t, "1\t0\n2\t8\n3\t23\n4\t29\n5\t36\n", out.String())
	})

	t.Run("json output", func(t *testing.T) {
		ctx, out := newTestContext(t, Globals{Format: "json", Unit: "byte", Origin: "0"}, "")
		require.NoError(t, (&LinesCmd{File: file}).Run(ctx))

		var table LineTable
		require.NoError(t, json.Unmarshal(out.Bytes(), &table))
		assert.Equal(t, LineTable{
			File:       file,
			Unit:       "byte",
			Origin:     0,
			Length:     61,
			LineStarts: []int{0, 8, 23, 29, 48},
		}, table)
	})
}

const sampleQueries = `
indexes: [15, 49, .nan, "x"]
positions:
  - {line: 2, col: 8}
  - {line: 2, column: 8}
  - [2, 8]
  - {line: 2}
`

func TestBatchCmd(t *testing.T) {
	file := testhelper.WriteFile(t, "sample.txt", sampleText)
	queries := testhelper.WriteFile(t, "queries.yaml", sampleQueries)

	t.Run("results", func(t *testing.T) {
		ctx, out := newTestContext(t, Globals{Format: "json"}, "")
		require.NoError(t, (&BatchCmd{File: file, Queries: queries}).Run(ctx))

		var results []Result
		require.NoError(t, json.Unmarshal(out.Bytes(), &results))
		require.Len(t, results, 8)

		var indexes []int
		var found []bool
		for _, r := range results {
			indexes = append(indexes, r.Index)
			found = append(found, r.Found)
		}
		assert.Equal(t, []int{15, -1, -1, -1, 15, 15, 15, -1}, indexes)
		assert.Equal(t, []bool{true, false, false, false, true, true, true, false}, found)
		assert.NotEmpty(t, results[2].Error)
		assert.NotEmpty(t, results[3].Error)
		assert.Equal(t, lineindex.ErrMissingColumn.Error(), results[7].Error)
	})

	t.Run("strict mode aggregates decode errors", func(t *testing.T) {
		ctx, _ := newTestContext(t, Globals{Format: "yaml"}, "")
		err := (&BatchCmd{File: file, Queries: queries, Strict: true}).Run(ctx)
		require.Error(t, err)

		var merr *multierror.Error
		require.ErrorAs(t, err, &merr)
		assert.Len(t, merr.Errors, 3)
		assert.ErrorIs(t, err, lineindex.ErrMissingColumn)
		assert.ErrorIs(t, err, lineindex.ErrNotANumber)
	})

	t.Run("json query file", func(t *testing.T) {
		jsonQueries := testhelper.WriteFile(t, "queries.json", `{"positions": [{"line": 1, "column": 1}, [5, 13]]}`)
		ctx, out := newTestContext(t, Globals{}, "")
		require.NoError(t, (&BatchCmd{File: file, Queries: jsonQueries}).Run(ctx))
		assert.Contains(t, out.String(), ":1:1: index 0\n")
		assert.Contains(t, out.String(), ":5:13: index 48\n")
	})

	t.Run("empty query file", func(t *testing.T) {
		empty := testhelper.WriteFile(t, "empty.yaml", "indexes: []\n")
		ctx, _ := newTestContext(t, Globals{}, "")
		err := (&BatchCmd{File: file, Queries: empty}).Run(ctx)
		require.ErrorIs(t, err, ErrNoQueries)
	})

	t.Run("unknown key", func(t *testing.T) {
		bad := testhelper.WriteFile(t, "bad.yaml", "offsets: [1]\n")
		ctx, _ := newTestContext(t, Globals{}, "")
		err := (&BatchCmd{File: file, Queries: bad}).Run(ctx)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to parse query file")
	})
}

func TestVersionCmd(t *testing.T) {
	ctx, out := newTestContext(t, Globals{}, "")
	require.NoError(t, (&VersionCmd{}).Run(ctx))
	assert.Equal(t, "linecolumn v0.1.0\n", out.String())
}
