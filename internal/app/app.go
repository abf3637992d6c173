package app

import (
	"context"
	"net/http"

	"github.com/shandysiswandi/arffview/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/arffview/internal/pkg/pkglog"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/arffview/internal/pkg/pkguid"
)

type App struct {
	ctx    context.Context
	cancel context.CancelFunc

	// configuration
	config pkgconfig.Config
	debug  bool

	// libraries
	uuid      pkguid.StringID
	snowflake pkguid.NumberID

	// server
	router     *pkgrouter.Router
	httpServer *http.Server

	closers []closer
}

type closer struct {
	name string
	fn   func(context.Context) error
}

func New() *App {
	pkglog.InitLogging()

	ctx, cancel := context.WithCancel(context.Background())
	app := &App{
		ctx:    ctx,
		cancel: cancel,
	}

	app.initConfig()
	app.initLibraries()
	app.initHTTPServer()
	app.initModules()
	app.initClosers()

	return app
}
