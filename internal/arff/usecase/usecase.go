package usecase

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgerror"
)

type TempFiles interface {
	Create(ctx context.Context) (*os.File, func(), error)
}

type Dependency struct {
	Temp TempFiles
}

type Usecase struct {
	temp TempFiles
}

func New(dep Dependency) *Usecase {
	return &Usecase{temp: dep.Temp}
}

// Preview validates the upload, stages it in a scratch file, parses it, and
// projects the result within limits. The scratch file is gone when Preview returns.
func (u *Usecase) Preview(ctx context.Context, in Upload, limits Limits) (entity.Preview, error) {
	if in.Content == nil {
		return entity.Preview{}, pkgerror.NewBadRequest(ErrMissingFile, "No file provided")
	}

	if !HasARFFExtension(in.Filename) {
		slog.InfoContext(ctx, "rejected upload with wrong extension", "filename", in.Filename)
		return entity.Preview{}, pkgerror.NewBadRequest(ErrInvalidExtension, "Only .arff files are allowed")
	}

	doc, err := u.stageAndParse(ctx, in.Content, limits.MaxBytes)
	if err != nil {
		return entity.Preview{}, err
	}

	if doc.Empty() {
		slog.WarnContext(ctx, "no data rows in upload", "filename", in.Filename)
		return entity.Preview{}, pkgerror.NewBadRequest(ErrEmptyDocument,
			"Could not extract data from the ARFF file or the file is empty")
	}

	doc.Name = in.Filename
	preview := Project(doc, limits.Width, limits.MaxRows)

	slog.InfoContext(ctx, "arff preview built",
		"filename", preview.Filename,
		"total_rows", preview.TotalRows,
		"total_columns", preview.TotalColumns,
		"displayed_rows", preview.DisplayedRows,
	)

	return preview, nil
}

func (u *Usecase) stageAndParse(ctx context.Context, src io.Reader, maxBytes int64) (entity.Document, error) {
	if u.temp == nil {
		return entity.Document{}, pkgerror.NewServer(fmt.Errorf("temp store is not configured"))
	}

	f, release, err := u.temp.Create(ctx)
	if err != nil {
		return entity.Document{}, pkgerror.NewServer(fmt.Errorf("create temp file: %w", err))
	}
	defer release()

	if maxBytes > 0 {
		src = io.LimitReader(src, maxBytes+1)
	}

	n, err := io.Copy(f, src)
	if errors.Is(err, ErrTooLarge) {
		slog.InfoContext(ctx, "upload stream cut at transport limit", "error", err)
		return entity.Document{}, pkgerror.NewTooLarge(err)
	}
	if err != nil {
		return entity.Document{}, pkgerror.NewServer(fmt.Errorf("write temp file: %w", err))
	}
	if maxBytes > 0 && n > maxBytes {
		slog.InfoContext(ctx, "rejected upload over size limit", "limit_bytes", maxBytes)
		return entity.Document{}, pkgerror.NewTooLarge(ErrTooLarge)
	}

	if err := f.Close(); err != nil {
		return entity.Document{}, pkgerror.NewServer(fmt.Errorf("close temp file: %w", err))
	}

	doc, err := ParseFile(ctx, f.Name())
	if err != nil {
		return entity.Document{}, pkgerror.NewServer(err)
	}

	return doc, nil
}
