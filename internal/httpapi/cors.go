package httpapi

import (
	"net/http"
	"strings"
)

// cors emits permissive CORS headers on every /api response, including 404
// and 405, so bots and other sites can call the API directly.
func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		h := w.Header()
		h.Set("Access-Control-Allow-Origin", "*")
		h.Set("Access-Control-Allow-Methods", allowedMethods(r.URL.Path))
		h.Set("Access-Control-Allow-Headers", "Content-Type")
		next.ServeHTTP(w, r)
	})
}

// allowedMethods returns the Access-Control-Allow-Methods value for path.
func allowedMethods(path string) string {
	switch {
	case underPath(path, "/api/guestbook"):
		return guestbookMethods
	case underPath(path, "/api/likes"):
		return likesMethods
	default:
		return readOnlyMethods
	}
}

func underPath(path, prefix string) bool {
	return path == prefix || strings.HasPrefix(path, prefix+"/")
}

// preflight answers OPTIONS requests; the headers come from cors.
func preflight(w http.ResponseWriter, _ *http.Request) { w.WriteHeader(http.StatusNoContent) }
