// Package server exposes the Pool Service over REST/JSON, the wire surface
// the mobile client speaks.
package server

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/poolup/backend/internal/auth"
	"github.com/poolup/backend/internal/middleware"
	"github.com/poolup/backend/internal/service"
)

// Server bundles the pool service with the token verifier behind a router.
type Server struct {
	pools *service.PoolService
	jwt   *auth.JWTManager
}

// New creates a Server for the given service and token verifier.
func New(pools *service.PoolService, jwtManager *auth.JWTManager) *Server {
	return &Server{pools: pools, jwt: jwtManager}
}

// Handler assembles the route table with the middleware chain applied:
// metrics and logging around everything, bearer-token auth on the pool
// routes only.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	authed := func(h http.HandlerFunc) http.Handler {
		return middleware.RequireAuth(s.jwt, h)
	}

	mux.Handle("POST /api/pools/create-pool", authed(s.handleCreatePool))
	mux.Handle("PATCH /api/pools/update-status", authed(s.handleUpdateStatus))
	mux.Handle("GET /api/pools/dashboard", authed(s.handleDashboard))
	mux.Handle("GET /api/pools/balance/{friendID}", authed(s.handleFriendBalance))
	mux.Handle("GET /api/pools/{poolID}", authed(s.handleGetPool))

	mux.HandleFunc("GET /healthz", handleHealth)
	mux.Handle("GET /metrics", promhttp.Handler())

	return middleware.Metrics(middleware.Logging(mux))
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
