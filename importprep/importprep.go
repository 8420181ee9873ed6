// Package importprep prepares CSV files for the document import:
// it checks that all expected columns are present, maps translated
// header names onto their canonical German names, appends the missing
// columns, and clears the ID column.
package importprep

import (
	"errors"
	"strings"
)

// ExpectedColumns lists the import columns in their expected order.
// The first name of each group is the canonical column name,
// the following names are accepted translations.
var ExpectedColumns = [][]string{
	{"DokumentUrl*", "Document url*", "URL du document*"},
	{"Verknüpfungsart*", "Url type*", "Type de lien*"},
	{"Abonnements", "Subscriptions"},
	{"Dokumentbeschreibung", "Document description", "Descriptif des documents"},
	{"Sprache*", "Language*", "Langue*"},
	{"Dokumenttyp*", "Document type*", "Type de document*"},
	{"Dokumentnummer", "Document identifier", "Indice du document"},
	{"Ausgabedatum", "Publication date", "Date de publication"},
	{"AcCode*"},
	{"ID"},
	{"Hosted Datei ID", "Hosted file ID", "ID du fichier hébergé"},
	{"Löschen", "Delete", "Supprimer"},
}

// idColumn is blanked in the output so re-imports don't
// collide with existing document IDs.
const idColumn = "ID"

// Result reports what Prepare found and changed.
type Result struct {
	// MissingColumns are canonical columns not present in the source
	// header. They are appended to the output with empty values.
	MissingColumns []string `json:"missingColumns"`

	// NumIDValuesCleared counts the non-empty values
	// removed from the ID column.
	NumIDValuesCleared int `json:"numIDValuesCleared"`
}

// CanonicalColumns returns the canonical name of every expected column
// in the expected order.
func CanonicalColumns() []string {
	columns := make([]string, len(ExpectedColumns))
	for i, variations := range ExpectedColumns {
		columns[i] = variations[0]
	}
	return columns
}

// canonicalIndex returns the ExpectedColumns index that headerName
// belongs to, or -1 if the name is not an expected column.
// Surrounding whitespace in headerName is ignored.
func canonicalIndex(headerName string) int {
	headerName = strings.TrimSpace(headerName)
	for i, variations := range ExpectedColumns {
		for _, name := range variations {
			if headerName == name {
				return i
			}
		}
	}
	return -1
}

// Prepare rewrites parsed CSV rows into the canonical import column layout.
//
// The first row is interpreted as the header. Every recognized header name,
// translated or canonical, maps its column onto the canonical column of the
// same meaning. The output always contains all expected columns in their
// expected order: values of unrecognized source columns are dropped, missing
// columns are filled with empty values, and the ID column is cleared.
//
// Prepare returns an error for a table without a header row.
func Prepare(rows [][]string) (prepared [][]string, result *Result, err error) {
	if len(rows) == 0 {
		return nil, nil, errors.New("empty CSV, expected at least a header row")
	}

	var (
		header    = rows[0]
		columns   = CanonicalColumns()
		srcColumn = make([]int, len(columns)) // canonical index -> source index
	)
	for i := range srcColumn {
		srcColumn[i] = -1
	}
	for srcIndex, headerName := range header {
		if canonical := canonicalIndex(headerName); canonical != -1 && srcColumn[canonical] == -1 {
			srcColumn[canonical] = srcIndex
		}
	}

	result = new(Result)
	for canonical, name := range columns {
		if srcColumn[canonical] == -1 {
			result.MissingColumns = append(result.MissingColumns, name)
		}
	}

	prepared = make([][]string, 0, len(rows))
	prepared = append(prepared, columns)

	for _, row := range rows[1:] {
		newRow := make([]string, len(columns))
		for canonical, name := range columns {
			srcIndex := srcColumn[canonical]
			if srcIndex == -1 || srcIndex >= len(row) {
				continue
			}
			if name == idColumn {
				if strings.TrimSpace(row[srcIndex]) != "" {
					result.NumIDValuesCleared++
				}
				continue
			}
			newRow[canonical] = row[srcIndex]
		}
		prepared = append(prepared, newRow)
	}

	return prepared, result, nil
}
