package http

import (
	"boardimport/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// All routes require a session token; extraction is additionally rate limited
// because each call bills an LLM request.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	imports := rg.Group("/imports")
	{
		imports.POST("/extract", mw.Auth(), mw.RateLimit(), h.Extract)
		imports.POST("", mw.Auth(), h.Import)
	}

	rg.GET("/boards", mw.Auth(), h.ListBoards)
}
