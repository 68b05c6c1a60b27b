package httpapi

import (
	"bytes"
	"encoding/json"

	"github.com/tinoosan/portfolio/internal/portfolio"
)

// Guestbook

// postGuestbookRequest keeps raw fields so non-string values can be coerced.
type postGuestbookRequest struct {
	Name    json.RawMessage `json:"name"`
	Message json.RawMessage `json:"message"`
}

type listGuestbookResponse struct {
	Count   int                        `json:"count"`
	Entries []portfolio.GuestbookEntry `json:"entries"`
}

type createGuestbookResponse struct {
	Entry portfolio.GuestbookEntry `json:"entry"`
}

type deleteGuestbookResponse struct {
	Deleted portfolio.GuestbookEntry `json:"deleted"`
}

// Likes

type postLikeRequest struct {
	Action string `json:"action"`
}

type likeResponse struct {
	Key   string `json:"key"`
	Count int64  `json:"count"`
}

// Content

type projectsResponse struct {
	Count    int                 `json:"count"`
	Projects []portfolio.Project `json:"projects"`
}

type recommendationResponse struct {
	Recommendation portfolio.Recommendation `json:"recommendation"`
	Total          int                      `json:"total"`
}

// coerceString turns a raw JSON value into text. Strings are unquoted, null or
// absent become "", and any other value keeps its compact JSON form.
func coerceString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err == nil {
			return s
		}
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return string(raw)
	}
	return buf.String()
}
