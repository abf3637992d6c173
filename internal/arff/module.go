package arff

import (
	"errors"

	"github.com/shandysiswandi/arffview/internal/arff/entity"
	"github.com/shandysiswandi/arffview/internal/arff/inbound"
	"github.com/shandysiswandi/arffview/internal/arff/usecase"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/arffview/internal/pkg/pkguid"
)

// DefaultMaxUploadSize is the upload cap used when none is configured (50 MiB).
const DefaultMaxUploadSize int64 = 50 << 20

// Config holds the module settings, read once at startup.
type Config struct {
	Width         int
	PageRows      int
	APIRows       int
	MaxUploadSize int64
	TempDir       string
	Debug         bool
}

type Dependency struct {
	Config Config
	Router *pkgrouter.Router
	ID     pkguid.NumberID
}

func New(dep Dependency) error {
	if dep.Router == nil {
		return errors.New("arff: router is required")
	}

	if dep.ID == nil {
		sf, err := pkguid.NewSnowflake()
		if err != nil {
			return err
		}
		dep.ID = sf
	}

	cfg := dep.Config.withDefaults()

	uc := usecase.New(usecase.Dependency{
		Temp: usecase.NewTempStore(cfg.TempDir, dep.ID),
	})

	inbound.RegisterHTTPEndpoint(dep.Router, uc, inbound.Config{
		Width:         cfg.Width,
		PageRows:      cfg.PageRows,
		APIRows:       cfg.APIRows,
		MaxUploadSize: cfg.MaxUploadSize,
		SecureCookies: !cfg.Debug,
	})

	return nil
}

func (c Config) withDefaults() Config {
	if c.Width < 1 {
		c.Width = entity.DefaultWidth
	}
	if c.PageRows < 1 {
		c.PageRows = entity.PageRows
	}
	if c.APIRows < 1 {
		c.APIRows = entity.APIRows
	}
	if c.MaxUploadSize < 1 {
		c.MaxUploadSize = DefaultMaxUploadSize
	}
	return c
}
