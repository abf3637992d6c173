package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"slices"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
	"github.com/shandysiswandi/arffview/internal/arff/usecase"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgroutine"
	"github.com/spf13/cobra"
)

var formats = []string{formatTable, formatJSON, formatYAML}

type previewOptions struct {
	rows     int
	width    int
	parallel int
	format   string
}

func newPreviewCommand() *cobra.Command {
	opts := previewOptions{}

	cmd := &cobra.Command{
		Use:   "preview <file.arff> [more.arff...]",
		Short: "Print a bounded preview of one or more ARFF files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(formats, opts.format) {
				return fmt.Errorf("unknown format %q (want one of %v)", opts.format, formats)
			}
			if opts.rows < 0 {
				return fmt.Errorf("--rows must not be negative")
			}

			previews, err := previewFiles(cmd.Context(), args, opts)
			if werr := write(cmd.OutOrStdout(), opts.format, previews); werr != nil {
				return werr
			}
			return err
		},
	}

	f := cmd.Flags()
	f.IntVarP(&opts.rows, "rows", "n", entity.PageRows, "maximum rows shown per file")
	f.IntVarP(&opts.width, "width", "w", entity.DefaultWidth, "number of columns shown per row")
	f.IntVar(&opts.parallel, "parallel", pkgroutine.DefaultMaxGoroutine, "files processed at once")
	f.StringVarP(&opts.format, "format", "o", formatTable, "output format: table, json or yaml")

	return cmd
}

// previewFiles parses every path concurrently and returns the previews that
// succeeded, in argument order, along with the joined per-file errors.
func previewFiles(ctx context.Context, paths []string, opts previewOptions) ([]entity.Preview, error) {
	results := make([]*entity.Preview, len(paths))
	mgr := pkgroutine.NewManager(opts.parallel)

	for i, path := range paths {
		mgr.Go(ctx, func(ctx context.Context) error {
			p, err := previewFile(ctx, path, opts)
			if err != nil {
				return fmt.Errorf("%s: %w", path, err)
			}
			results[i] = &p
			return nil
		})
	}
	err := mgr.Wait()

	previews := make([]entity.Preview, 0, len(paths))
	for _, p := range results {
		if p != nil {
			previews = append(previews, *p)
		}
	}

	return previews, err
}

func previewFile(ctx context.Context, path string, opts previewOptions) (entity.Preview, error) {
	if !usecase.HasARFFExtension(path) {
		return entity.Preview{}, usecase.ErrInvalidExtension
	}

	doc, err := usecase.ParseFile(ctx, path)
	if err != nil {
		return entity.Preview{}, err
	}
	if doc.Empty() {
		return entity.Preview{}, usecase.ErrEmptyDocument
	}

	doc.Name = filepath.Base(path)
	return usecase.Project(doc, opts.width, opts.rows), nil
}
