package http

import (
	"github.com/gin-gonic/gin"

	"boardimport/internal/importer"
	"boardimport/pkg/log"
)

// Handler is the public interface for the importer HTTP delivery layer.
type Handler interface {
	Extract(c *gin.Context)
	Import(c *gin.Context)
	ListBoards(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc importer.UseCase
}

// New creates a new HTTP handler for the importer domain.
func New(l log.Logger, uc importer.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
