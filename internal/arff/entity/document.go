package entity

// Row is one data line of an ARFF file split into its field strings.
type Row []string

// Document is the data section of one ARFF file.
//
// Rows keep their original order and are not required to share a field count.
type Document struct {
	Name string
	Rows []Row
}

// Len returns the number of data rows.
func (d Document) Len() int {
	return len(d.Rows)
}

// Columns returns the field count of the first row, or 0 for an empty document.
func (d Document) Columns() int {
	if len(d.Rows) == 0 {
		return 0
	}
	return len(d.Rows[0])
}

// Empty reports whether no data rows were found.
func (d Document) Empty() bool {
	return len(d.Rows) == 0
}
