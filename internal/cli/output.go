package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
	"gopkg.in/yaml.v3"
)

const (
	formatTable = "table"
	formatJSON  = "json"
	formatYAML  = "yaml"
)

type previewOutput struct {
	Filename      string     `json:"filename" yaml:"filename"`
	Data          [][]string `json:"data" yaml:"data"`
	TotalRows     int        `json:"total_rows" yaml:"total_rows"`
	TotalColumns  int        `json:"total_columns" yaml:"total_columns"`
	DisplayedRows int        `json:"displayed_rows" yaml:"displayed_rows"`
}

func toOutput(p entity.Preview) previewOutput {
	data := make([][]string, 0, len(p.Rows))
	for _, row := range p.Rows {
		data = append(data, row)
	}
	return previewOutput{
		Filename:      p.Filename,
		Data:          data,
		TotalRows:     p.TotalRows,
		TotalColumns:  p.TotalColumns,
		DisplayedRows: p.DisplayedRows,
	}
}

func write(w io.Writer, format string, previews []entity.Preview) error {
	switch format {
	case formatJSON:
		out := make([]previewOutput, 0, len(previews))
		for _, p := range previews {
			out = append(out, toOutput(p))
		}
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case formatYAML:
		out := make([]previewOutput, 0, len(previews))
		for _, p := range previews {
			out = append(out, toOutput(p))
		}
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(out); err != nil {
			return err
		}
		return enc.Close()
	default:
		for i, p := range previews {
			if i > 0 {
				fmt.Fprintln(w)
			}
			if err := writeTable(w, p); err != nil {
				return err
			}
		}
		return nil
	}
}

func writeTable(w io.Writer, p entity.Preview) error {
	fmt.Fprintf(w, "%s: %d rows, %d columns (showing %d)\n", p.Filename, p.TotalRows, p.TotalColumns, p.DisplayedRows)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "#\t%s\n", strings.Join(p.ColumnNames(), "\t"))
	for i, row := range p.Rows {
		fmt.Fprintf(tw, "%s\t%s\n", strconv.Itoa(i+1), strings.Join(row, "\t"))
	}

	return tw.Flush()
}
