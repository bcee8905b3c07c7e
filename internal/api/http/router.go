package http

import (
	_ "ovpnapi/docs"
	"ovpnapi/internal/api/http/audit"
	"ovpnapi/internal/api/http/logger"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/chi/v5"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// @title OpenVPN Client Management API
// @version 1.0.0
// @description API for fully automated OpenVPN client management via openvpn-ctl.
// @BasePath /
// @schemes http https

func NewApiRouter(handler *RequestHandler, auditHandler *audit.RequestHandler, auditLogger logger.Logger, node string) *chi.Mux {
	r := chi.NewRouter()

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(logger.LoggerMiddleware(auditLogger, "ovpnapi", node))

	// == users ==
	r.Post("/add_user", handler.AddUser)       // issue client
	r.Post("/revoke_user", handler.RevokeUser) // revoke client
	r.Post("/regen_user", handler.RegenUser)   // reissue client
	r.Post("/list_users", handler.ListUsers)   // list clients
	r.Post("/show_ovpn", handler.ShowOvpn)     // print bundle
	r.Post("/export_ovpn", handler.ExportOvpn) // write bundle elsewhere

	// == bundles ==
	r.Get("/bundles", handler.ListBundles)

	// == audit ==
	r.Get("/audit", auditHandler.GetAuditLog)

	// == health ==
	r.Get("/healthz", handler.Health)

	return r
}

func NewSwaggerRouter() *chi.Mux {
	r := chi.NewRouter()

	// middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	// == swagger ==
	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	return r
}
