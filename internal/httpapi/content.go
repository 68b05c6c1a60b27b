package httpapi

import (
	"net/http"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

// GET /api/profile
func (s *Server) getProfile(w http.ResponseWriter, r *http.Request) {
	toJSON(w, http.StatusOK, s.catalog.Profile())
}

// GET /api/projects
func (s *Server) listProjects(w http.ResponseWriter, r *http.Request) {
	ps := s.catalog.Projects()
	toJSON(w, http.StatusOK, projectsResponse{Count: len(ps), Projects: ps})
}

// GET /api/recommendations?category=
func (s *Server) getRecommendation(w http.ResponseWriter, r *http.Request) {
	category := portfolio.Category(r.URL.Query().Get("category"))
	toJSON(w, http.StatusOK, recommendationResponse{
		Recommendation: s.catalog.Recommend(category),
		Total:          s.catalog.Total(),
	})
}
