// Package portfolio holds the domain types shared by the services, stores and HTTP layer.
package portfolio

import "time"

// GuestbookEntry is a single guestbook record. ID and CreatedAt are assigned by the store.
type GuestbookEntry struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}

// LikeAction is the requested change to a like counter.
type LikeAction string

const (
	// LikeActionLike increments a counter by one.
	LikeActionLike LikeAction = "like"
	// LikeActionUnlike decrements a counter by one, never below zero.
	LikeActionUnlike LikeAction = "unlike"
)

// ParseLikeAction maps raw input to an action. Anything other than "unlike" is a like.
func ParseLikeAction(s string) LikeAction {
	if LikeAction(s) == LikeActionUnlike {
		return LikeActionUnlike
	}
	return LikeActionLike
}

// Delta returns the counter adjustment for the action.
func (a LikeAction) Delta() int64 {
	if a == LikeActionUnlike {
		return -1
	}
	return 1
}

// DefaultLikeKey is used when a request does not name a key.
const DefaultLikeKey = "portfolio"

// Contact lists the ways to reach the site owner.
type Contact struct {
	Email   string `json:"email"`
	GitHub  string `json:"github"`
	Website string `json:"website"`
}

// Skills groups technologies by area.
type Skills struct {
	Languages []string `json:"languages"`
	Frontend  []string `json:"frontend"`
	Backend   []string `json:"backend"`
	Etc       []string `json:"etc"`
}

// Project is a showcased piece of work.
type Project struct {
	ID               int      `json:"id"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"shortDescription"`
	TechStack        []string `json:"techStack"`
	GitHubURL        string   `json:"githubUrl,omitempty"`
	LiveURL          string   `json:"liveUrl,omitempty"`
}

// Profile describes the developer behind the site.
type Profile struct {
	Name     string    `json:"name"`
	Role     string    `json:"role"`
	Summary  string    `json:"summary"`
	Contact  Contact   `json:"contact"`
	Skills   Skills    `json:"skills"`
	Projects []Project `json:"projects"`
}

// Category classifies a recommendation text.
type Category string

const (
	CategoryVibeCoding          Category = "vibe-coding"
	CategorySuccessEncyclopedia Category = "success-encyclopedia"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	switch c {
	case CategoryVibeCoding, CategorySuccessEncyclopedia:
		return true
	}
	return false
}

// Recommendation is a short motivational text.
type Recommendation struct {
	ID       int      `json:"id"`
	Category Category `json:"category"`
	Text     string   `json:"text"`
}
