package app

import (
	"log/slog"
	"os"

	"github.com/shandysiswandi/arffview/internal/arff"
)

func (a *App) initModules() {
	if a.config.GetBool("modules.arff.enabled") {
		err := arff.New(arff.Dependency{
			Config: arff.Config{
				Width:         int(a.config.GetInt("preview.width")),
				PageRows:      int(a.config.GetInt("preview.page_rows")),
				APIRows:       int(a.config.GetInt("preview.api_rows")),
				MaxUploadSize: a.config.GetInt("upload.max_size"),
				TempDir:       a.config.GetString("upload.temp_dir"),
				Debug:         a.debug,
			},
			Router: a.router,
			ID:     a.snowflake,
		})
		if err != nil {
			slog.Error("failed to init module arff", "error", err)
			os.Exit(1)
		}
	}
}
