package csvrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectFormat(t *testing.T) {
	tests := []struct {
		name       string
		data       []byte
		wantFormat Format
		wantText   string
	}{
		{
			name:       "plain ASCII defaults",
			data:       []byte("Header\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\n"},
			wantText:   "Header\n",
		},
		{
			name:       "UTF-8 with BOM",
			data:       []byte("\xEF\xBB\xBFa;b\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\n"},
			wantText:   "a;b\n",
		},
		{
			name:       "UTF-8 umlauts",
			data:       []byte("Straße;Text\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\n"},
			wantText:   "Straße;Text\n",
		},
		{
			// 0xDF is not valid standalone UTF-8, so the probe
			// falls through to ISO 8859-1
			name:       "Latin-1 umlauts",
			data:       []byte("Stra\xDFe;Text\r\n"),
			wantFormat: Format{Encoding: "ISO 8859-1", Separator: ";", Newline: "\r\n"},
			wantText:   "Straße;Text\r\n",
		},
		{
			name:       "comma separator",
			data:       []byte("a,b,c\nd,e,f\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"},
			wantText:   "a,b,c\nd,e,f\n",
		},
		{
			name:       "semicolon wins the tie",
			data:       []byte("a;b,c\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\n"},
			wantText:   "a;b,c\n",
		},
		{
			name:       "quoted separators don't count",
			data:       []byte("\"a;b;c\",d\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ",", Newline: "\n"},
			wantText:   "\"a;b;c\",d\n",
		},
		{
			name:       "no separator at all defaults to semicolon",
			data:       []byte("just one header line\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\n"},
			wantText:   "just one header line\n",
		},
		{
			name:       "CRLF detected",
			data:       []byte("a;b\r\nc;d\r\n"),
			wantFormat: Format{Encoding: "UTF-8", Separator: ";", Newline: "\r\n"},
			wantText:   "a;b\r\nc;d\r\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			format, text, err := DetectFormat(tt.data, nil)
			require.NoError(t, err)
			require.NoError(t, format.Validate())
			assert.Equal(t, tt.wantFormat, *format)
			assert.Equal(t, tt.wantText, string(text))
		})
	}
}

func TestDetectFormat_sampleLines(t *testing.T) {
	// Commas dominate the sampled prefix, semicolons only
	// appear after it and must not influence the detection
	data := []byte("a,b\nc,d\n" + "e;f;g;h\n")
	format, _, err := DetectFormat(data, &FormatDetectionConfig{
		Encodings:   []string{"UTF-8"},
		SampleLines: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, ",", format.Separator)
}

func TestDetectFormat_encodingNotDetected(t *testing.T) {
	// Without a permissive fallback candidate the probe can fail
	_, _, err := DetectFormat([]byte("Stra\xDFe\n"), &FormatDetectionConfig{
		Encodings: []string{"UTF-8"},
	})
	require.ErrorIs(t, err, ErrEncodingNotDetected)
}
