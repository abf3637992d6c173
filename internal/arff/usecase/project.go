package usecase

import "github.com/shandysiswandi/arffview/internal/arff/entity"

// Project builds a bounded view of doc: at most maxRows rows, each exactly
// width fields long (right-padded with "" or truncated).
//
// A non-positive width falls back to entity.DefaultWidth. Totals always
// describe the full document, not the view.
func Project(doc entity.Document, width, maxRows int) entity.Preview {
	if width < 1 {
		width = entity.DefaultWidth
	}

	n := min(max(maxRows, 0), doc.Len())
	rows := make([]entity.Row, n)
	for i := range rows {
		rows[i] = fitRow(doc.Rows[i], width)
	}

	return entity.Preview{
		Filename:      doc.Name,
		Rows:          rows,
		Width:         width,
		TotalRows:     doc.Len(),
		TotalColumns:  doc.Columns(),
		DisplayedRows: n,
	}
}

func fitRow(row entity.Row, width int) entity.Row {
	out := make(entity.Row, width)
	copy(out, row)
	return out
}
