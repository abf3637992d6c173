package entity

import "strconv"

const (
	// DefaultWidth is the number of columns every preview row is normalized to.
	DefaultWidth = 20
	// PageRows caps the rows rendered on the HTML results page.
	PageRows = 100
	// APIRows caps the rows returned by the JSON endpoint.
	APIRows = 50
)

// Preview is a width-normalized, row-capped view of a Document.
type Preview struct {
	Filename      string
	Rows          []Row
	Width         int
	TotalRows     int
	TotalColumns  int
	DisplayedRows int
}

// ColumnNames returns the display headers "Column 1" .. "Column N" for the preview width.
func (p Preview) ColumnNames() []string {
	names := make([]string, p.Width)
	for i := range names {
		names[i] = "Column " + strconv.Itoa(i+1)
	}
	return names
}

// Truncated reports whether rows of the document were left out of the view.
func (p Preview) Truncated() bool {
	return p.DisplayedRows < p.TotalRows
}
