package csvrepair

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConvert_latin1(t *testing.T) {
	// Latin-1 encoded document with a CRLF inside a quoted field
	data := []byte("Stra\xDFe;Text\r\n\"ANSI \nTEST UMBRUCH\";x\r\n")

	output, result, err := Convert(data, nil)
	require.NoError(t, err)

	assert.Equal(t, "ISO 8859-1", result.Format.Encoding)
	assert.Equal(t, ";", result.Format.Separator)
	assert.Equal(t, "\r\n", result.Format.Newline)
	assert.Equal(t, 2, result.NumRows)
	assert.Equal(t, 1, result.NumLineBreaksReplaced)
	assert.Equal(t, 0, result.NumSeparatorsReplaced)
	assert.Equal(t, 0, result.NumTrailingMarkersRemoved)

	// Output is re-encoded as Latin-1 with the embedded
	// break replaced and rows joined with \n
	assert.Equal(t, "Stra\xDFe;Text\n\"ANSI  <br> TEST UMBRUCH\";x\n", string(output))
}

func TestConvert_headerOnly(t *testing.T) {
	// No separator anywhere: detection defaults to the semicolon
	// and the conversion is a structural no-op
	data := []byte("just a header line\n")

	output, result, err := Convert(data, nil)
	require.NoError(t, err)

	assert.Equal(t, "UTF-8", result.Format.Encoding)
	assert.Equal(t, ";", result.Format.Separator)
	assert.Equal(t, 1, result.NumRows)
	assert.Zero(t, result.NumLineBreaksReplaced)
	assert.Equal(t, "just a header line\n", string(output))
}

func TestConvert_postPasses(t *testing.T) {
	data := []byte("\"a;b\",\"x\r\n\",c\n")

	output, result, err := Convert(data, NewDefaultConfig())
	require.NoError(t, err)

	assert.Equal(t, ",", result.Format.Separator)
	assert.Equal(t, 1, result.NumLineBreaksReplaced)
	assert.Equal(t, 1, result.NumSeparatorsReplaced, "semicolon in field replaced with colon")
	assert.Equal(t, 1, result.NumTrailingMarkersRemoved, "trailing marker stripped")

	// "a;b" becomes "a:b", the line break in "x\r\n" becomes a
	// trailing marker which is stripped again, quoting is preserved
	assert.Equal(t, "\"a:b\",\"x\",c\n", string(output))
}

func TestConvert_postPassesDisabled(t *testing.T) {
	data := []byte("\"a;b\",\"x\r\n\",c\n")

	output, result, err := Convert(data, &Config{})
	require.NoError(t, err)

	assert.Equal(t, 1, result.NumLineBreaksReplaced)
	assert.Zero(t, result.NumSeparatorsReplaced)
	assert.Zero(t, result.NumTrailingMarkersRemoved)
	assert.Equal(t, "\"a;b\",\"x <br> \",c\n", string(output))
}

func TestConvert_normalizedOutputHasNoEmbeddedBreaks(t *testing.T) {
	data := []byte("h1;h2\n\"multi\nline\";\"an\rother\"\n\"last\r\none\";x")

	output, result, err := Convert(data, &Config{})
	require.NoError(t, err)
	require.Equal(t, 3, result.NumRows)
	assert.Equal(t, 3, result.NumLineBreaksReplaced)

	// Every remaining line break must be a row separator
	rows := ParseFields(string(output), ';')
	require.Len(t, rows, 3)
	for _, row := range rows {
		for _, field := range row {
			assert.NotContains(t, field.Text, "\n")
			assert.NotContains(t, field.Text, "\r")
		}
	}
}
