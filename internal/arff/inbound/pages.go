package inbound

import (
	"bytes"
	"context"
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	pageUpload   = "upload.html"
	pageResults  = "results.html"
	pageNotFound = "404.html"
	pageFailure  = "500.html"
)

type uploadView struct {
	Messages []flashMessage
	Width    int
	MaxRows  int
}

type resultsView struct {
	Preview entity.Preview
}

type notFoundView struct {
	Path string
}

type pages struct {
	tmpl *template.Template
}

func mustParsePages() *pages {
	funcs := template.FuncMap{
		"inc": func(i int) int { return i + 1 },
	}
	return &pages{tmpl: template.Must(template.New("pages").Funcs(funcs).ParseFS(templateFS, "templates/*.html"))}
}

// render executes the page into a buffer first so a template fault never
// leaves a half-written response.
func (p *pages) render(ctx context.Context, w http.ResponseWriter, code int, name string, data any) {
	var buf bytes.Buffer
	if err := p.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		slog.ErrorContext(ctx, "failed to render page", "page", name, "error", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(code)
	if _, err := buf.WriteTo(w); err != nil {
		slog.WarnContext(ctx, "failed to write page", "page", name, "error", err)
	}
}
