package middleware

import (
	"boardimport/config"
	"boardimport/pkg/log"
	"boardimport/pkg/scope"
)

type Middleware struct {
	l          log.Logger
	jwtManager scope.Manager
	config     *config.Config
	limiter    *rateLimiter
}

func New(l log.Logger, jwtManager scope.Manager, cfg *config.Config) Middleware {
	return Middleware{
		l:          l,
		jwtManager: jwtManager,
		config:     cfg,
		limiter:    newRateLimiter(cfg.Importer.RateLimitPerMin),
	}
}
