package inbound

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
	"github.com/shandysiswandi/arffview/internal/arff/usecase"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgrouter"
)

type uc interface {
	Preview(ctx context.Context, in usecase.Upload, limits usecase.Limits) (entity.Preview, error)
}

// Config carries the presentation limits of the HTTP endpoints.
type Config struct {
	Width         int
	PageRows      int
	APIRows       int
	MaxUploadSize int64
	SecureCookies bool
}

func RegisterHTTPEndpoint(r *pkgrouter.Router, uc uc, cfg Config) {
	end := &HTTPEndpoint{uc: uc, cfg: cfg, pages: mustParsePages()}
	limit := maxBody(cfg.MaxUploadSize)

	r.Handle(http.MethodGet, "/", http.HandlerFunc(end.Home))
	r.Handle(http.MethodGet, "/upload/", http.RedirectHandler("/", http.StatusSeeOther))
	r.Handle(http.MethodPost, "/upload/", http.HandlerFunc(end.Upload), limit)

	r.POST("/api/upload/", end.UploadAPI, limit)

	r.NotFound(http.HandlerFunc(end.NotFound))
	r.ServerError(http.HandlerFunc(end.ServerError))
}
