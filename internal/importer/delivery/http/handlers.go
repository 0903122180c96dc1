package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"boardimport/internal/middleware"
	"boardimport/pkg/response"
)

// Extract godoc
// @Summary     Extract task candidates from text
// @Description Sends free-form text to the LLM and returns the extracted task candidates, in order, for user review. Nothing is written to the board.
// @Tags        Importer
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body extractReq true "Free-form text"
// @Success     200 {object} extractResp
// @Failure     400 {object} response.Resp "Bad Request - empty input"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/imports/extract [POST]
func (h *handler) Extract(c *gin.Context) {
	ctx := c.Request.Context()

	sc, req, err := h.processExtractReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Extract(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Extract: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newExtractResp(output))
}

// Import godoc
// @Summary     Import confirmed candidates as cards
// @Description Creates one card per confirmed candidate on the target board's first list, sequentially and in order. Aborts at the first failed create; cards created before the failure stay on the board.
// @Tags        Importer
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Param       body body importReq true "Target board and confirmed candidates"
// @Success     200 {object} importResp
// @Failure     400 {object} response.Resp "Bad Request - empty batch or no board selected"
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     409 {object} response.Resp "Conflict - board has no lists"
// @Failure     502 {object} response.Resp "Bad Gateway - import aborted mid-batch"
// @Router      /api/v1/imports [POST]
func (h *handler) Import(c *gin.Context) {
	ctx := c.Request.Context()

	sc, input, err := h.processImportReq(c)
	if err != nil {
		h.respondError(c, err)
		return
	}

	output, err := h.uc.Import(ctx, sc, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Import: %v", err)

		// ListID is set once the write phase has started: the batch may be
		// partially on the board, and the client must be told so.
		if output.ListID != "" {
			response.ErrorWithStatus(c, http.StatusBadGateway, err, map[string]interface{}{
				"created_count": len(output.CreatedCards),
				"warning":       "some tasks may have been added to the board",
			})
			return
		}

		h.respondError(c, err)
		return
	}

	response.OK(c, h.newImportResp(output))
}

// ListBoards godoc
// @Summary     List the session user's boards
// @Description Returns the boards the authenticated user can import into.
// @Tags        Importer
// @Accept      json
// @Produce     json
// @Security    BearerAuth
// @Success     200 {object} listBoardsResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/boards [GET]
func (h *handler) ListBoards(c *gin.Context) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		h.respondError(c, errScopeMissing)
		return
	}

	output, err := h.uc.ListBoards(ctx, sc)
	if err != nil {
		h.l.Errorf(ctx, "uc.ListBoards: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newListBoardsResp(output))
}
