package inbound

import "github.com/shandysiswandi/arffview/internal/arff/entity"

type PreviewResponse struct {
	Filename      string     `json:"filename"`
	Data          [][]string `json:"data"`
	TotalRows     int        `json:"total_rows"`
	TotalColumns  int        `json:"total_columns"`
	DisplayedRows int        `json:"displayed_rows"`
	Success       bool       `json:"success"`
}

type ErrorResponse struct {
	Error   string `json:"error"`
	Success bool   `json:"success"`
}

func toPreviewResponse(p entity.Preview) PreviewResponse {
	data := make([][]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		data = append(data, row)
	}

	return PreviewResponse{
		Filename:      p.Filename,
		Data:          data,
		TotalRows:     p.TotalRows,
		TotalColumns:  p.TotalColumns,
		DisplayedRows: p.DisplayedRows,
		Success:       true,
	}
}
