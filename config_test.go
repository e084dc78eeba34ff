package linecolumn

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/shibukawa/linecolumn/lineindex"
)

func TestConfig_Defaults(t *testing.T) {
	config, err := ParseConfig([]byte("{}"))
	assert.NoError(t, err)

	assert.Equal(t, 1, *config.Origin)
	assert.Equal(t, "rune", config.Unit)
	assert.Equal(t, "text", config.Output.Format)
	assert.True(t, config.ColorEnabled())
	assert.False(t, config.Output.Context)
}

func TestConfig_IndexOptions(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		expected lineindex.Options
	}{
		{"defaults", "{}", lineindex.Options{}},
		{"zero origin", "origin: 0", lineindex.Options{ZeroOrigin: true}},
		{"one origin", "origin: 1", lineindex.Options{}},
		{"byte unit", "unit: byte", lineindex.Options{Unit: lineindex.Byte}},
		{"utf16 zero origin", "origin: 0\nunit: utf16", lineindex.Options{ZeroOrigin: true, Unit: lineindex.UTF16}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := ParseConfig([]byte(tt.content))
			assert.NoError(t, err)

			opts, err := config.IndexOptions()
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, opts)
		})
	}
}

func TestConfig_EnvExpansion(t *testing.T) {
	t.Setenv("LINECOLUMN_UNIT", "utf16")
	t.Setenv("LINECOLUMN_FORMAT", "yaml")

	config, err := ParseConfig([]byte("unit: \"${LINECOLUMN_UNIT}\"\noutput:\n  format: \"$LINECOLUMN_FORMAT\"\n"))
	assert.NoError(t, err)
	assert.Equal(t, "utf16", config.Unit)
	assert.Equal(t, "yaml", config.Output.Format)
}
