package inbound

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
	"github.com/shandysiswandi/arffview/internal/arff/usecase"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgerror"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgrouter"
)

const (
	fileField = "arff_file"

	// room for multipart boundaries and part headers on top of the file itself
	multipartSlack = 1 << 20
)

type HTTPEndpoint struct {
	uc    uc
	cfg   Config
	pages *pages
}

func (h *HTTPEndpoint) Home(w http.ResponseWriter, r *http.Request) {
	messages := popFlash(w, r, h.cfg.SecureCookies)
	h.pages.render(r.Context(), w, http.StatusOK, pageUpload, uploadView{
		Messages: messages,
		Width:    h.cfg.Width,
		MaxRows:  h.cfg.PageRows,
	})
}

func (h *HTTPEndpoint) Upload(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	preview, err := h.preview(ctx, r, h.cfg.PageRows)
	if err != nil {
		pushFlash(w, flashMessage{Level: levelError, Text: userMessage(ctx, err)}, h.cfg.SecureCookies)
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	h.pages.render(ctx, w, http.StatusOK, pageResults, resultsView{Preview: preview})
}

func (h *HTTPEndpoint) UploadAPI(ctx context.Context, r *http.Request) (any, error) {
	preview, err := h.preview(ctx, r, h.cfg.APIRows)
	if err != nil {
		return nil, err
	}

	return toPreviewResponse(preview), nil
}

func (h *HTTPEndpoint) NotFound(w http.ResponseWriter, r *http.Request) {
	if isAPI(r) {
		writeAPIError(w, http.StatusNotFound, "endpoint not found")
		return
	}

	h.pages.render(r.Context(), w, http.StatusNotFound, pageNotFound, notFoundView{Path: r.URL.Path})
}

// ServerError answers a request whose handler panicked.
func (h *HTTPEndpoint) ServerError(w http.ResponseWriter, r *http.Request) {
	if isAPI(r) {
		writeAPIError(w, http.StatusInternalServerError, "Internal server error")
		return
	}

	h.pages.render(r.Context(), w, http.StatusInternalServerError, pageFailure, nil)
}

func isAPI(r *http.Request) bool {
	return strings.HasPrefix(r.URL.Path, "/api/")
}

func writeAPIError(w http.ResponseWriter, code int, msg string) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Error: msg})
}

func (h *HTTPEndpoint) preview(ctx context.Context, r *http.Request, rows int) (entity.Preview, error) {
	in, cleanup, err := extractUpload(r)
	if err != nil {
		return entity.Preview{}, err
	}
	defer cleanup()

	return h.uc.Preview(ctx, in, usecase.Limits{
		Width:    h.cfg.Width,
		MaxRows:  rows,
		MaxBytes: h.cfg.MaxUploadSize,
	})
}

// extractUpload streams the arff_file part without buffering it. A request
// without that part, or with an unnamed one, yields an Upload with no Content.
func extractUpload(r *http.Request) (usecase.Upload, func(), error) {
	reader, err := r.MultipartReader()
	if err != nil {
		return usecase.Upload{}, func() {}, pkgerror.NewBadRequest(err, "No file provided")
	}

	for {
		part, err := reader.NextPart()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return usecase.Upload{}, func() {}, nil
			}
			if isBodyTooLarge(err) {
				return usecase.Upload{}, func() {}, pkgerror.NewTooLarge(fmt.Errorf("%w: %w", usecase.ErrTooLarge, err))
			}
			return usecase.Upload{}, func() {}, pkgerror.NewBadRequest(err, "Malformed upload request")
		}

		if part.FormName() != fileField {
			_ = part.Close()
			continue
		}

		if part.FileName() == "" {
			_ = part.Close()
			return usecase.Upload{}, func() {}, nil
		}

		return usecase.Upload{
			Filename: part.FileName(),
			Content:  bodyLimitReader{r: part},
		}, func() { _ = part.Close() }, nil
	}
}

// maxBody caps the request body. A zero or negative limit leaves it unbounded.
func maxBody(limit int64) pkgrouter.Middleware {
	return func(next http.Handler) http.Handler {
		if limit <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			r.Body = http.MaxBytesReader(w, r.Body, limit+multipartSlack)
			next.ServeHTTP(w, r)
		})
	}
}

// bodyLimitReader reports a tripped body cap as usecase.ErrTooLarge.
type bodyLimitReader struct {
	r io.Reader
}

func (b bodyLimitReader) Read(p []byte) (int, error) {
	n, err := b.r.Read(p)
	if err != nil && isBodyTooLarge(err) {
		err = fmt.Errorf("%w: %w", usecase.ErrTooLarge, err)
	}
	return n, err
}

func isBodyTooLarge(err error) bool {
	var mbe *http.MaxBytesError
	return errors.As(err, &mbe)
}

func userMessage(ctx context.Context, err error) string {
	var gerr *pkgerror.Error
	if !errors.As(err, &gerr) {
		slog.ErrorContext(ctx, "unclassified upload error", "error", err)
		return "Error processing the file"
	}

	if gerr.Type() == pkgerror.TypeServer {
		slog.ErrorContext(ctx, "upload failed", "error", gerr.String())
	}

	return gerr.Msg()
}
