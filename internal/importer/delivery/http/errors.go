package http

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"boardimport/internal/importer"
	"boardimport/pkg/response"
)

var (
	errWrongBody    = errors.New("wrong body")
	errScopeMissing = errors.New("session scope missing")
)

// respondError translates domain errors into HTTP responses. Anything the
// client can fix is a 400, a board without lists is a 409, everything else is
// hidden behind a 500.
func (h *handler) respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, errWrongBody),
		errors.Is(err, importer.ErrEmptyInput),
		errors.Is(err, importer.ErrNoCandidates),
		errors.Is(err, importer.ErrNoBoardSelected):
		response.Error(c, err, nil)
	case errors.Is(err, errScopeMissing):
		response.Unauthorized(c)
	case errors.Is(err, importer.ErrNoDestinationList):
		response.ErrorWithStatus(c, http.StatusConflict, err, nil)
	default:
		response.InternalError(c, err)
	}
}
