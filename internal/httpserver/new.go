package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"boardimport/config"
	"boardimport/internal/importer"
	"boardimport/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	// Importer domain
	importerUC importer.UseCase

	cfg *config.Config
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// Importer domain
	ImporterUseCase importer.UseCase

	AppConfig *config.Config
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:           logger,
		gin:         gin.Default(),
		port:        cfg.Port,
		mode:        cfg.Mode,
		environment: cfg.Environment,
		importerUC:  cfg.ImporterUseCase,
		cfg:         cfg.AppConfig,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.importerUC == nil {
		return errors.New("importer use case is required")
	}
	if srv.cfg == nil {
		return errors.New("app config is required")
	}
	return nil
}
