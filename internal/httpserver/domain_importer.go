package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	importerHTTP "boardimport/internal/importer/delivery/http"
	"boardimport/internal/middleware"
)

// setupImporterDomain registers the importer routes.
//
// Pattern to follow when adding a new domain:
//  1. Create UseCase:      uc := mydomainUC.New(...)
//  2. Create HTTP Handler: h := mydomainHTTP.New(srv.l, uc)
//  3. Register Routes:     mydomainHTTP.RegisterRoutes(rg, h, mw)
func (srv HTTPServer) setupImporterDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	h := importerHTTP.New(srv.l, srv.importerUC)
	importerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Importer domain registered")
	return nil
}
