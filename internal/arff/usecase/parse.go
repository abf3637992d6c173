package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

const (
	commentMarker   = "%"
	directiveMarker = "@"
	dataDirective   = "@data"
	fieldDelimiter  = ","
)

type section int

const (
	sectionHeader section = iota
	sectionData
)

// Parse extracts the data section of an ARFF file.
//
// It never fails: content without an @data line, or with nothing but blank,
// comment, and directive lines after it, yields an empty Document. Header
// declarations are not interpreted and rows are not checked against them.
func Parse(data []byte) entity.Document {
	state := sectionHeader
	var rows []entity.Row

	for _, line := range splitLines(decode(data)) {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, commentMarker) {
			continue
		}

		if isDataDirective(line) {
			state = sectionData
			continue
		}

		if state != sectionData || strings.HasPrefix(line, directiveMarker) {
			continue
		}

		rows = append(rows, parseRow(line))
	}

	return entity.Document{Rows: rows}
}

// ParseFile reads the file at path and parses it.
// Unlike Parse it reports read failures instead of folding them into an empty result.
func ParseFile(ctx context.Context, path string) (entity.Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		slog.ErrorContext(ctx, "failed to read arff file", "path", path, "error", err)
		return entity.Document{}, fmt.Errorf("read arff file: %w", err)
	}

	doc := Parse(data)
	slog.DebugContext(ctx, "arff file parsed", "bytes", len(data), "rows", doc.Len(), "columns", doc.Columns())

	return doc, nil
}

// decode turns raw bytes into text, dropping a UTF-8 BOM and replacing
// invalid sequences with U+FFFD.
func decode(data []byte) string {
	out, _, err := transform.Bytes(unicode.UTF8BOM.NewDecoder(), data)
	if err != nil {
		return strings.ToValidUTF8(string(data), "\uFFFD")
	}
	return string(out)
}

// splitLines accepts \n, \r\n and bare \r line endings.
func splitLines(text string) []string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	return strings.Split(text, "\n")
}

func isDataDirective(line string) bool {
	return len(line) >= len(dataDirective) && strings.EqualFold(line[:len(dataDirective)], dataDirective)
}

// parseRow splits before unquoting, so a delimiter inside quotes still separates fields.
func parseRow(line string) entity.Row {
	tokens := strings.Split(line, fieldDelimiter)
	row := make(entity.Row, len(tokens))
	for i, token := range tokens {
		row[i] = cleanField(token)
	}
	return row
}

func cleanField(token string) string {
	token = strings.TrimSpace(token)
	token = stripQuotes(token, '"')
	return stripQuotes(token, '\'')
}

// stripQuotes removes one layer of q only when it wraps both ends.
func stripQuotes(s string, q byte) string {
	if len(s) >= 2 && s[0] == q && s[len(s)-1] == q {
		return s[1 : len(s)-1]
	}
	return s
}
