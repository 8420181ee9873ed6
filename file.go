package csvrepair

import (
	"context"
	"fmt"

	"github.com/ungerik/go-fs"
)

// DefaultOutputFile derives the output file for input by
// appending "_processed" to its base name before the extension.
func DefaultOutputFile(input fs.File) fs.File {
	return input.TrimExt() + "_processed" + fs.File(input.Ext())
}

// ConvertFile reads the input file, converts it with Convert,
// and writes the result to the output file.
//
// An empty output defaults to DefaultOutputFile(input).
// Nothing is written when reading or converting fails.
func ConvertFile(ctx context.Context, input, output fs.File, config *Config) (*Result, error) {
	if output == "" {
		output = DefaultOutputFile(input)
	}

	data, err := input.ReadAllContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("reading CSV file %s: %w", input, err)
	}

	converted, result, err := Convert(data, config)
	if err != nil {
		return nil, fmt.Errorf("converting CSV file %s: %w", input, err)
	}

	err = output.WriteAllContext(ctx, converted)
	if err != nil {
		return nil, fmt.Errorf("writing CSV file %s: %w", output, err)
	}
	return result, nil
}
