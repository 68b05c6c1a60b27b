package httpapi

import (
	"errors"
	"io"
	"net/http"

	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

// GET /api/likes?key=
func (s *Server) getLikes(w http.ResponseWriter, r *http.Request) {
	key, n, err := s.likes.Get(r.Context(), r.URL.Query().Get("key"))
	if err != nil {
		writeServiceError(w, r, s.log, err, "could not load likes")
		return
	}
	toJSON(w, http.StatusOK, likeResponse{Key: key, Count: n})
}

// POST /api/likes?key= with an optional {"action":"like"|"unlike"} body.
// A missing or unreadable body counts as a like.
func (s *Server) toggleLike(w http.ResponseWriter, r *http.Request) {
	var req postLikeRequest
	if err := decodeJSON(w, r, &req); err != nil && !errors.Is(err, io.EOF) {
		s.log.Debug("unreadable like body, defaulting to like", "req_id", chimw.GetReqID(r.Context()), "err", err)
		req.Action = ""
	}
	action := portfolio.ParseLikeAction(req.Action)
	key, n, err := s.likes.Apply(r.Context(), r.URL.Query().Get("key"), action)
	if err != nil {
		writeServiceError(w, r, s.log, err, "could not update likes")
		return
	}
	likeActions.WithLabelValues(string(action)).Inc()
	toJSON(w, http.StatusOK, likeResponse{Key: key, Count: n})
}
