package csvrepair

// Config configures a conversion.
type Config struct {
	// Detection configures encoding and separator detection.
	// If nil, NewDefaultFormatDetectionConfig() is used.
	Detection *FormatDetectionConfig `json:"detection,omitempty"`

	// ReplaceSeparatorInFields replaces semicolons
	// within field values with colons.
	ReplaceSeparatorInFields bool `json:"replaceSeparatorInFields"`

	// StripTrailingMarkers removes line break markers
	// from the end of field values.
	StripTrailingMarkers bool `json:"stripTrailingMarkers"`
}

// NewDefaultConfig returns the configuration of the csvrepair command:
// default format detection with both post-passes enabled.
func NewDefaultConfig() *Config {
	return &Config{
		Detection:                nil,
		ReplaceSeparatorInFields: true,
		StripTrailingMarkers:     true,
	}
}

// Result reports what a conversion detected and changed.
type Result struct {
	Format                    Format `json:"format"`
	NumRows                   int    `json:"numRows"`
	NumLineBreaksReplaced     int    `json:"numLineBreaksReplaced"`
	NumSeparatorsReplaced     int    `json:"numSeparatorsReplaced"`
	NumTrailingMarkersRemoved int    `json:"numTrailingMarkersRemoved"`
}

// Convert normalizes the line breaks embedded in the fields of raw CSV data.
//
// The character encoding and field separator are detected from the data,
// every line break inside a field value is replaced with LineBreakMarker,
// and the table is serialized back using the detected separator and
// encoding, with rows joined by "\n".
//
// If config is nil, NewDefaultConfig() is used.
func Convert(data []byte, config *Config) (output []byte, result *Result, err error) {
	if config == nil {
		config = NewDefaultConfig()
	}

	format, text, err := DetectFormat(data, config.Detection)
	if err != nil {
		return nil, nil, err
	}

	table := &Table{
		Format: *format,
		Rows:   ParseFields(string(text), format.Separator[0]),
	}

	result = &Result{Format: *format, NumRows: len(table.Rows)}

	for _, row := range table.Rows {
		for i := range row {
			str, n := NormalizeLineBreaks(row[i].Text)
			result.NumLineBreaksReplaced += n

			if config.ReplaceSeparatorInFields {
				str, n = ReplaceSeparatorInField(str)
				result.NumSeparatorsReplaced += n
			}
			if config.StripTrailingMarkers {
				str, n = StripTrailingMarkers(str)
				result.NumTrailingMarkersRemoved += n
			}

			row[i].Text = str
		}
	}

	output, err = EncodeTable(table)
	if err != nil {
		return nil, nil, err
	}
	return output, result, nil
}
