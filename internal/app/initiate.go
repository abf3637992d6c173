package app

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/cors"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgconfig"
	"github.com/shandysiswandi/arffview/internal/pkg/pkglog"
	"github.com/shandysiswandi/arffview/internal/pkg/pkgrouter"
	"github.com/shandysiswandi/arffview/internal/pkg/pkguid"
)

func (a *App) initConfig() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load .env file", "error", err)
	}

	path := "/config/config.yaml"
	if os.Getenv("LOCAL") == "true" {
		path = "./config/config.yaml"
	}

	cfg, err := pkgconfig.NewViper(path)
	if err != nil {
		slog.Error("failed to init config", "error", err)
		os.Exit(1)
	}

	//nolint:errcheck,gosec // ignore error
	os.Setenv("TZ", cfg.GetString("tz"))

	a.config = cfg
	a.debug = cfg.GetBool("debug")
	pkglog.SetDebug(a.debug)
}

func (a *App) initLibraries() {
	a.uuid = pkguid.NewUUID()

	sf, err := pkguid.NewSnowflake()
	if err != nil {
		slog.Error("failed to init snowflake", "error", err)
		os.Exit(1)
	}
	a.snowflake = sf
}

func (a *App) initHTTPServer() {
	a.router = pkgrouter.NewRouter(a.uuid, pkgrouter.SecurityHeaders(!a.debug))

	origins := a.config.GetArray("cors.allowed_origins")
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	corsHandler := cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodOptions,
		},
		AllowedHeaders: []string{"*"},
	})

	readHeaderTimeout := a.config.GetDuration("server.read_header_timeout")
	if readHeaderTimeout <= 0 {
		readHeaderTimeout = 10 * time.Second
	}

	a.httpServer = &http.Server{
		Addr:              a.listenAddress(),
		Handler:           corsHandler.Handler(a.router),
		ReadHeaderTimeout: readHeaderTimeout,
	}
}

// listenAddress prefers a bare "port" setting (PORT in the environment, as
// set by most PaaS hosts) over server.address.http.
func (a *App) listenAddress() string {
	if port := a.config.GetString("port"); port != "" {
		return net.JoinHostPort("", port)
	}
	return a.config.GetString("server.address.http")
}

func (a *App) initClosers() {
	a.closers = append(a.closers,
		closer{name: "HTTP Server", fn: a.httpServer.Shutdown},
		closer{name: "Config", fn: func(context.Context) error { return a.config.Close() }},
	)
}
