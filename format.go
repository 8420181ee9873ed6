// Package csvrepair normalizes embedded line breaks inside quoted CSV fields.
//
// The package reads a whole CSV document into memory, detects its character
// encoding and field separator, parses it with full support for quoted
// multi-line fields, replaces every line break inside a field value with the
// fixed marker " <br> ", and serializes the table back using the detected
// separator and encoding.
//
// The pipeline is strictly linear and synchronous:
//
//	bytes -> decoded text -> detected separator -> parsed rows
//	      -> normalized rows -> serialized text -> bytes
//
// No state is shared between invocations, so independent documents can be
// converted from separate goroutines without locking.
package csvrepair

import (
	"errors"
	"fmt"
)

// Format describes the encoding and structural format of a CSV document
// as detected from its raw bytes.
//
// Newline records the line ending convention of the *input* document.
// Output rows are always joined with "\n", see Writer.
type Format struct {
	// Encoding is the character encoding of the CSV data.
	// One of the FormatDetectionConfig.Encodings candidates,
	// by default "UTF-8", "ISO 8859-1", or "Windows 1252".
	Encoding string `json:"encoding"`

	// Separator is the field delimiter character (single character).
	// Detection only ever yields ";" or ",".
	Separator string `json:"separator"`

	// Newline is the detected input line ending, "\r\n" or "\n".
	Newline string `json:"newline"`
}

// Validate checks if the Format configuration is valid.
// It can be safely called on a nil receiver.
func (f *Format) Validate() error {
	switch {
	case f == nil:
		return errors.New("<nil> csvrepair.Format")
	case f.Encoding == "":
		return errors.New("missing csvrepair.Format.Encoding")
	case f.Separator == "":
		return errors.New("missing csvrepair.Format.Separator")
	case len(f.Separator) > 1:
		return fmt.Errorf("invalid csvrepair.Format.Separator: %q", f.Separator)
	case f.Newline != "\n" && f.Newline != "\r\n":
		return fmt.Errorf("invalid csvrepair.Format.Newline: %q", f.Newline)
	}
	return nil
}

// FormatDetectionConfig configures encoding and separator detection.
type FormatDetectionConfig struct {
	// Encodings is the list of character encodings to probe, in priority
	// order. The first encoding that decodes the data without error wins.
	Encodings []string `json:"encodings"`

	// SampleLines is the number of non-empty lines inspected
	// for separator detection.
	SampleLines int `json:"sampleLines"`
}

// NewDefaultFormatDetectionConfig returns a FormatDetectionConfig
// for the typical encodings of German language CSV exports.
//
// Note that ISO 8859-1 decodes every possible byte sequence,
// so probing never gets past it to Windows 1252. The candidate
// is kept for configurations that re-order or drop ISO 8859-1.
func NewDefaultFormatDetectionConfig() *FormatDetectionConfig {
	return &FormatDetectionConfig{
		Encodings: []string{
			"UTF-8",
			"ISO 8859-1",
			"Windows 1252", // like ANSI
		},
		SampleLines: 10,
	}
}
