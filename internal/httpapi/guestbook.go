package httpapi

import (
	"errors"
	"net/http"

	chi "github.com/go-chi/chi/v5"

	"github.com/tinoosan/portfolio/internal/service/guestbook"
)

// GET /api/guestbook
func (s *Server) listGuestbook(w http.ResponseWriter, r *http.Request) {
	entries, err := s.guestbook.List(r.Context())
	if err != nil {
		writeServiceError(w, r, s.log, err, "could not load the guestbook")
		return
	}
	toJSON(w, http.StatusOK, listGuestbookResponse{Count: len(entries), Entries: entries})
}

// POST /api/guestbook
func (s *Server) createGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	var req postGuestbookRequest
	if err := decodeJSON(w, r, &req); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeErr(w, http.StatusRequestEntityTooLarge, "request body too large", "payload_too_large")
			return
		}
		badRequest(w, "invalid JSON: "+err.Error())
		return
	}
	entry, err := s.guestbook.Create(r.Context(), coerceString(req.Name), coerceString(req.Message))
	if err != nil {
		writeServiceError(w, r, s.log, err, "could not process the request")
		return
	}
	guestbookWrites.WithLabelValues("create").Inc()
	toJSON(w, http.StatusCreated, createGuestbookResponse{Entry: entry})
}

// DELETE /api/guestbook?id=N and DELETE /api/guestbook/{id}
func (s *Server) deleteGuestbookEntry(w http.ResponseWriter, r *http.Request) {
	raw := chi.URLParam(r, "id")
	if raw == "" {
		raw = r.URL.Query().Get("id")
	}
	id, err := guestbook.ParseID(raw)
	if err != nil {
		writeServiceError(w, r, s.log, err, "could not delete the entry")
		return
	}
	deleted, err := s.guestbook.Delete(r.Context(), id)
	if err != nil {
		writeServiceError(w, r, s.log, err, "could not delete the entry")
		return
	}
	guestbookWrites.WithLabelValues("delete").Inc()
	toJSON(w, http.StatusOK, deleteGuestbookResponse{Deleted: deleted})
}
