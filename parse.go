package csvrepair

import "strings"

// ParseFields parses decoded CSV text into rows of fields,
// honoring RFC 4180 style quoting.
//
// A field beginning with a quote continues, including embedded separator
// and line break characters, until the matching closing quote. A doubled
// quote inside a quoted field is one literal quote character. A line break
// outside of quotes terminates the row, with "\r\n" consumed as one unit.
//
// Parsing is lenient and never fails:
// a quote inside an unquoted field is literal content,
// text after a closing quote is appended to the field,
// and an unterminated quote at the end of input is an implicit close.
//
// Blank lines parse as rows of length zero and a trailing newline
// produces no extra row. Rows may have varying field counts.
func ParseFields(text string, separator byte) []Row {
	var (
		rows        []Row
		row         Row
		field       strings.Builder
		fieldQuoted bool // current field began with a quote
		inQuotes    bool
		rowStarted  bool // current row has any field content
	)

	endField := func() {
		row = append(row, Field{Text: field.String(), Quoted: fieldQuoted})
		field.Reset()
		fieldQuoted = false
	}

	endRow := func() {
		if rowStarted {
			endField()
		} else {
			row = Row{}
		}
		rows = append(rows, row)
		row = nil
		rowStarted = false
	}

	for i := 0; i < len(text); i++ {
		c := text[i]

		if inQuotes {
			if c != '"' {
				field.WriteByte(c)
				continue
			}
			if i+1 < len(text) && text[i+1] == '"' {
				// Doubled quote is a literal quote
				field.WriteByte('"')
				i++
			} else {
				inQuotes = false
			}
			continue
		}

		switch {
		case c == '"' && !fieldQuoted && field.Len() == 0:
			inQuotes = true
			fieldQuoted = true
			rowStarted = true

		case c == separator:
			endField()
			rowStarted = true

		case c == '\n':
			endRow()

		case c == '\r':
			if i+1 < len(text) && text[i+1] == '\n' {
				i++
			}
			endRow()

		default:
			field.WriteByte(c)
			rowStarted = true
		}
	}

	// Flush the pending row, implicitly closing an unterminated quote
	if rowStarted {
		endField()
		rows = append(rows, row)
	}

	return rows
}
