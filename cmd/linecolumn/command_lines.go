package main

// LinesCmd represents the lines command
type LinesCmd struct {
	File string `arg:"" help:"Text file to index, or - for standard input"`
}

// Run executes the lines command
func (cmd *LinesCmd) Run(ctx *Context) error {
	idx, err := buildIndex(ctx, cmd.File)
	if err != nil {
		return err
	}

	return writeLineTable(ctx, LineTable{
		File:       displayName(cmd.File),
		Unit:       idx.Unit().String(),
		Origin:     idx.Origin(),
		Length:     idx.Len(),
		LineStarts: idx.LineStarts(),
	})
}
