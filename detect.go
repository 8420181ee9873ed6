package csvrepair

import (
	"bytes"
	"errors"
	"unicode/utf8"

	"github.com/domonda/go-types/charset"
)

// ErrEncodingNotDetected is returned when no candidate encoding
// decodes the input without error.
//
// With the default candidates this is practically unreachable
// because ISO 8859-1 decodes every byte sequence. The error
// exists for configurations with a stricter candidate list.
var ErrEncodingNotDetected = errors.New("could not detect text encoding")

// DetectFormat detects the character encoding, line ending convention,
// and field separator of raw CSV data.
//
// Detection steps:
//  1. Encoding: the candidates from config.Encodings are probed in order,
//     the first one that decodes the data without error wins.
//     UTF-8 is probed by validating the byte sequence and trimming an
//     optional byte order mark, all other candidates are decoded with
//     the charset package.
//  2. Line ending: "\r\n" if the text contains one, else "\n".
//  3. Separator: semicolons and commas are counted outside quoted spans
//     in the first config.SampleLines non-empty lines. The more frequent
//     character wins, ties and documents without any candidate default
//     to the semicolon.
//
// It returns the detected format together with the decoded UTF-8 text.
// If config is nil, NewDefaultFormatDetectionConfig() is used.
func DetectFormat(data []byte, config *FormatDetectionConfig) (format *Format, text []byte, err error) {
	if config == nil {
		config = NewDefaultFormatDetectionConfig()
	}

	format = new(Format)

	format.Encoding, text, err = probeEncoding(data, config.Encodings)
	if err != nil {
		return nil, nil, err
	}

	if bytes.Contains(text, []byte{'\r', '\n'}) {
		format.Newline = "\r\n"
	} else {
		format.Newline = "\n"
	}

	format.Separator = detectSeparator(text, config.SampleLines)

	return format, text, nil
}

// probeEncoding returns the name of the first candidate encoding that
// decodes data without error, together with the decoded UTF-8 text.
func probeEncoding(data []byte, candidates []string) (name string, text []byte, err error) {
	for _, name := range candidates {
		if name == "UTF-8" {
			if utf8.Valid(data) {
				return name, charset.TrimBOM(data, charset.BOMUTF8), nil
			}
			continue
		}
		enc, err := charset.GetEncoding(name)
		if err != nil {
			return "", nil, err
		}
		text, err = enc.Decode(data)
		if err == nil {
			return name, text, nil
		}
	}
	return "", nil, ErrEncodingNotDetected
}

// detectSeparator counts semicolons and commas outside quoted spans
// in the first sampleLines non-empty lines of text.
// The more frequent character wins, the semicolon on a tie.
func detectSeparator(text []byte, sampleLines int) string {
	if sampleLines <= 0 {
		sampleLines = 10
	}
	var (
		semicolons   int
		commas       int
		inQuotes     bool
		sampledLines int
		lineEmpty    = true
	)
	for _, c := range text {
		switch c {
		case '"':
			inQuotes = !inQuotes
			lineEmpty = false
		case ';':
			if !inQuotes {
				semicolons++
			}
			lineEmpty = false
		case ',':
			if !inQuotes {
				commas++
			}
			lineEmpty = false
		case '\n', '\r':
			if !inQuotes {
				if !lineEmpty {
					sampledLines++
					if sampledLines >= sampleLines {
						if commas > semicolons {
							return ","
						}
						return ";"
					}
				}
				lineEmpty = true
			}
		default:
			lineEmpty = false
		}
	}
	if commas > semicolons {
		return ","
	}
	return ";"
}
