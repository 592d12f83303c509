package handlers

import (
	"net/http"

	mw "github.com/rogerio-castellano/commerce-dashboard/internal/http/middleware"
)

// MeHandler godoc
// @Summary Identity of the signed-in user
// @Description Display name, email and photo as asserted by the identity provider.
// @Tags auth
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.Identity
// @Failure 401 {string} string "Unauthorized"
// @Router /me [get]
func (s *Server) MeHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := mw.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	s.respond(w, http.StatusOK, identity)
}

// SignOutHandler godoc
// @Summary Drop the caller's dashboard session
// @Description The next request starts again from the seed catalog.
// @Tags auth
// @Security BearerAuth
// @Success 204 "Signed out"
// @Router /me/session [delete]
func (s *Server) SignOutHandler(w http.ResponseWriter, r *http.Request) {
	identity, ok := mw.IdentityFrom(r.Context())
	if !ok {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}
	s.sessions.Drop(identity.Subject)
	w.WriteHeader(http.StatusNoContent)
}

// HealthHandler godoc
// @Summary Liveness probe
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse
// @Router /healthz [get]
func (s *Server) HealthHandler(w http.ResponseWriter, r *http.Request) {
	s.respond(w, http.StatusOK, HealthResponse{Status: "ok", Sessions: s.sessions.Len()})
}
