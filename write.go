package csvrepair

import (
	"bytes"
	"io"
	"strings"
)

// Writer serializes a Table as delimited text.
//
// A field is written quoted if its Quoted flag is set or if its text
// contains the separator, a quote character, a raw line break, or the
// line break marker. Quote characters inside quoted fields are doubled.
//
// Rows are joined with "\n" by default. Once fields are normalized no
// line break can appear inside a field, so the row separator is the
// only line break in the output.
type Writer struct {
	separator      rune
	newline        string
	quoteAllFields bool
	encoder        Encoder
}

func NewWriter() *Writer {
	return &Writer{
		separator:      ';',
		newline:        "\n",
		quoteAllFields: false,
		encoder:        nil,
	}
}

func (w *Writer) clone() *Writer {
	c := new(Writer)
	*c = *w
	return c
}

func (w *Writer) WithSeparator(separator rune) *Writer {
	mod := w.clone()
	mod.separator = separator
	return mod
}

func (w *Writer) WithNewline(newline string) *Writer {
	mod := w.clone()
	mod.newline = newline
	return mod
}

func (w *Writer) WithQuoteAllFields(quoteAllFields bool) *Writer {
	mod := w.clone()
	mod.quoteAllFields = quoteAllFields
	return mod
}

// WithEncoder returns a new writer that encodes every serialized row
// with the passed encoder before writing it.
func (w *Writer) WithEncoder(encoder Encoder) *Writer {
	mod := w.clone()
	mod.encoder = encoder
	return mod
}

func (w *Writer) Separator() rune {
	return w.separator
}

func (w *Writer) Newline() string {
	return w.newline
}

func (w *Writer) QuoteAllFields() bool {
	return w.quoteAllFields
}

func (w *Writer) Encoder() Encoder {
	return w.encoder
}

// WriteRows writes all rows to dest.
func (w *Writer) WriteRows(dest io.Writer, rows []Row) error {
	rowBuf := bytes.NewBuffer(make([]byte, 0, 1024))
	for _, row := range rows {
		err := w.writeRow(rowBuf, row)
		if err != nil {
			return err
		}
		_, err = dest.Write(rowBuf.Bytes())
		if err != nil {
			return err
		}
		rowBuf.Reset()
	}
	return nil
}

func (w *Writer) writeRow(rowBuf *bytes.Buffer, row Row) error {
	for i, field := range row {
		if i > 0 {
			_, err := rowBuf.WriteRune(w.separator)
			if err != nil {
				return err
			}
		}
		_, err := rowBuf.WriteString(w.escapeField(field))
		if err != nil {
			return err
		}
	}
	_, err := rowBuf.WriteString(w.newline)
	if err != nil {
		return err
	}

	if w.encoder == nil {
		return nil
	}

	// Read, encode, and write back the buffered row
	encoded, err := w.encoder.Bytes(rowBuf.Bytes())
	if err != nil {
		return err
	}
	rowBuf.Reset()
	_, err = rowBuf.Write(encoded)
	return err
}

func (w *Writer) escapeField(field Field) string {
	needsQuotes := w.quoteAllFields ||
		field.Quoted ||
		strings.ContainsRune(field.Text, w.separator) ||
		strings.ContainsAny(field.Text, "\"\r\n") ||
		strings.Contains(field.Text, LineBreakMarker)
	if !needsQuotes {
		return field.Text
	}
	return `"` + strings.ReplaceAll(field.Text, `"`, `""`) + `"`
}

// EncodeTable serializes table using the separator and character
// encoding of its format.
func EncodeTable(table *Table) ([]byte, error) {
	err := table.Format.Validate()
	if err != nil {
		return nil, err
	}
	encoder, err := CharsetEncoder(table.Format.Encoding)
	if err != nil {
		return nil, err
	}
	var buf bytes.Buffer
	err = NewWriter().
		WithSeparator(rune(table.Format.Separator[0])).
		WithEncoder(encoder).
		WriteRows(&buf, table.Rows)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
