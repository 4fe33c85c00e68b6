// Package http implements the HTTP transport layer of inkwell. It provides
// middleware, route handlers, and the error-to-status mapping for the JSON
// API. Authentication, access logging and login throttling are all handled
// at this layer before requests reach the service layer.
package http

import (
	"github.com/avolkov/inkwell/internal/config"
	"github.com/avolkov/inkwell/internal/logger"
	"github.com/avolkov/inkwell/internal/service"
)

// SessionCookieName is the cookie under which the session token travels for
// browser clients. Non-browser clients may send the same token as a Bearer
// header instead.
const SessionCookieName = "inkwell_session"

type Handler struct {
	services *service.Services

	// authCfg carries the session lifetime (cookie max-age) and the login
	// throttling parameters.
	authCfg config.Auth

	logger *logger.Logger
}

func NewHandler(services *service.Services, authCfg config.Auth, logger *logger.Logger) *Handler {
	return &Handler{
		services: services,
		authCfg:  authCfg,
		logger:   logger,
	}
}
