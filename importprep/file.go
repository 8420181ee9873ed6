package importprep

import (
	"context"
	"fmt"

	"github.com/ungerik/go-fs"

	"github.com/domonda/go-csvrepair"
)

// FileResult reports what PrepareFile detected and changed.
type FileResult struct {
	Result
	Format  csvrepair.Format `json:"format"`
	NumRows int              `json:"numRows"`
}

// DefaultOutputFile derives the output file for input by
// appending "_optimized" to its base name before the extension.
func DefaultOutputFile(input fs.File) fs.File {
	return input.TrimExt() + "_optimized" + fs.File(input.Ext())
}

// PrepareFile reads the input CSV file, rewrites it into the canonical
// import column layout with Prepare, and writes the result to the output
// file using the detected separator and character encoding of the input.
//
// An empty output defaults to DefaultOutputFile(input).
// Nothing is written when reading, detection, or preparation fails.
func PrepareFile(ctx context.Context, input, output fs.File) (*FileResult, error) {
	if output == "" {
		output = DefaultOutputFile(input)
	}

	data, err := input.ReadAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading CSV file %s: %w", input, err)
	}

	format, text, err := csvrepair.DetectFormat(data, nil)
	if err != nil {
		return nil, fmt.Errorf("detecting format of CSV file %s: %w", input, err)
	}

	table := &csvrepair.Table{
		Format: *format,
		Rows:   csvrepair.ParseFields(string(text), format.Separator[0]),
	}

	prepared, result, err := Prepare(table.Strings())
	if err != nil {
		return nil, fmt.Errorf("preparing CSV file %s: %w", input, err)
	}

	encoded, err := csvrepair.EncodeTable(csvrepair.StringsTable(*format, prepared))
	if err != nil {
		return nil, err
	}
	err = output.WriteAllContext(ctx, encoded)
	if err != nil {
		return nil, fmt.Errorf("writing CSV file %s: %w", output, err)
	}

	return &FileResult{
		Result:  *result,
		Format:  *format,
		NumRows: len(prepared),
	}, nil
}
