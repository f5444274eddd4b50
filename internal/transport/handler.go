// Package transport exposes the dashboard over HTTP and gRPC.
package transport

import (
	"fmt"
	"html/template"
	"net/http"

	"github.com/goodnatureofminers/workernode-dashboard/internal/model"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"go.uber.org/zap"
)

// Options configures the HTTP handlers.
type Options struct {
	Namespace    model.Namespace
	SS58Prefix   uint16
	HistoryLimit int
}

// Handler serves the dashboard page and its JSON API.
type Handler struct {
	dashboard Dashboard
	prefs     Preferences
	history   History
	opts      Options
	page      *template.Template
	logger    *zap.Logger
}

// NewHandler returns a Handler. history may be nil when no snapshot store is
// configured.
func NewHandler(dash Dashboard, prefs Preferences, history History, opts Options, logger *zap.Logger) (*Handler, error) {
	page, err := parseTemplates()
	if err != nil {
		return nil, err
	}
	if opts.Namespace == "" {
		opts.Namespace = model.DefaultNamespace
	}
	return &Handler{
		dashboard: dash,
		prefs:     prefs,
		history:   history,
		opts:      opts,
		page:      page,
		logger:    logger.Named("http"),
	}, nil
}

// Register adds every route to mux.
func (h *Handler) Register(mux *gwruntime.ServeMux) error {
	routes := []struct {
		method  string
		pattern string
		handler gwruntime.HandlerFunc
	}{
		{http.MethodGet, "/dashboard", h.dashboardPage},
		{http.MethodGet, "/api/v1/dashboard", h.dashboardJSON},
		{http.MethodGet, "/api/v1/reward-period", h.rewardPeriod},
		{http.MethodGet, "/api/v1/accounts/{account}/history", h.accountHistory},
		{http.MethodGet, "/api/v1/preferences", h.preferences},
		{http.MethodPut, "/api/v1/preferences/favorites/{account}", h.setFavorite(true)},
		{http.MethodDelete, "/api/v1/preferences/favorites/{account}", h.setFavorite(false)},
		{http.MethodPut, "/api/v1/preferences/columns/{column}", h.setColumn},
	}
	for _, r := range routes {
		if err := mux.HandlePath(r.method, r.pattern, r.handler); err != nil {
			return fmt.Errorf("register %s %s: %w", r.method, r.pattern, err)
		}
	}
	return nil
}

// Routes wraps the gateway mux with the root redirect and the metrics endpoint.
func Routes(gw *gwruntime.ServeMux, metrics http.Handler) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("GET /{$}", http.RedirectHandler("/dashboard", http.StatusFound))
	mux.Handle("/metrics", metrics)
	mux.Handle("/", gw)
	return mux
}
