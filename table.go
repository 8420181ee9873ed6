package csvrepair

// Field is one cell of a table row.
type Field struct {
	// Text is the field value in UTF-8.
	Text string

	// Quoted reports whether the field was quoted in the source document.
	// Quoted fields stay quoted when the table is serialized,
	// independent of their content.
	Quoted bool
}

// Row is an ordered sequence of fields.
// A blank source line parses as a Row of length zero.
type Row []Field

// Strings returns the field texts of the row.
func (r Row) Strings() []string {
	if r == nil {
		return nil
	}
	strs := make([]string, len(r))
	for i := range r {
		strs[i] = r[i].Text
	}
	return strs
}

// Table is an ordered sequence of rows sharing one detected format.
// Rows may have varying field counts, matching loose CSV handling.
type Table struct {
	Format Format
	Rows   []Row
}

// Strings returns all rows of the table as string slices.
func (t *Table) Strings() [][]string {
	if t == nil {
		return nil
	}
	rows := make([][]string, len(t.Rows))
	for i := range t.Rows {
		rows[i] = t.Rows[i].Strings()
	}
	return rows
}

// StringsTable creates a Table from plain string rows.
// No field gets the Quoted flag, so the Writer quotes
// purely based on field content.
func StringsTable(format Format, rows [][]string) *Table {
	table := &Table{Format: format, Rows: make([]Row, len(rows))}
	for i, strs := range rows {
		row := make(Row, len(strs))
		for j, str := range strs {
			row[j] = Field{Text: str}
		}
		table.Rows[i] = row
	}
	return table
}
