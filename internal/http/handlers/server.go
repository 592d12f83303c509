package handlers

import (
	"errors"
	"net/http"

	mw "github.com/rogerio-castellano/commerce-dashboard/internal/http/middleware"
	"github.com/rogerio-castellano/commerce-dashboard/internal/store"
	"go.uber.org/zap"
)

var errNoIdentity = errors.New("request carries no identity")

// Server serves the dashboard API. Each caller works on its own session.
type Server struct {
	sessions *store.Sessions
	log      *zap.Logger
}

func NewServer(sessions *store.Sessions, log *zap.Logger) *Server {
	if log == nil {
		log = zap.NewNop()
	}
	return &Server{sessions: sessions, log: log}
}

// session resolves the caller's dashboard, writing the error response itself when it fails.
func (s *Server) session(w http.ResponseWriter, r *http.Request) (*store.Dashboard, bool) {
	identity, ok := mw.IdentityFrom(r.Context())
	if !ok {
		s.log.Error("handler reached without identity", zap.String("path", r.URL.Path), zap.Error(errNoIdentity))
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return nil, false
	}

	d, err := s.sessions.Get(r.Context(), identity.Subject)
	if err != nil {
		s.log.Error("could not open dashboard session", zap.String("subject", identity.Subject), zap.Error(err))
		http.Error(w, "could not open dashboard session", http.StatusInternalServerError)
		return nil, false
	}
	return d, true
}
