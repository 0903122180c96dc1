package http

import (
	"github.com/gin-gonic/gin"

	"boardimport/internal/importer"
	"boardimport/internal/middleware"
	"boardimport/internal/model"
)

func (h *handler) processExtractReq(c *gin.Context) (model.Scope, extractReq, error) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		return model.Scope{}, extractReq{}, errScopeMissing
	}

	var req extractReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "extract: invalid request body: %v", err)
		return model.Scope{}, extractReq{}, errWrongBody
	}

	return sc, req, nil
}

func (h *handler) processImportReq(c *gin.Context) (model.Scope, importer.ImportInput, error) {
	ctx := c.Request.Context()

	sc, ok := middleware.ScopeFromContext(c)
	if !ok {
		return model.Scope{}, importer.ImportInput{}, errScopeMissing
	}

	var req importReq
	if err := c.ShouldBindJSON(&req); err != nil {
		h.l.Warnf(ctx, "import: invalid request body: %v", err)
		return model.Scope{}, importer.ImportInput{}, errWrongBody
	}

	input, err := req.toInput()
	if err != nil {
		h.l.Warnf(ctx, "import: invalid candidate payload: %v", err)
		return model.Scope{}, importer.ImportInput{}, err
	}

	return sc, input, nil
}
