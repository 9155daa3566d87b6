package content

import "time"

// Name is one baby-name record as served by the content API.
type Name struct {
	Name        string `json:"name"`
	Slug        string `json:"slug"`
	Religion    string `json:"religion"`
	Meaning     string `json:"meaning"`
	Gender      string `json:"gender"`
	Origin      string `json:"origin"`
	LuckyNumber int    `json:"lucky_number,omitempty"`
}

// Article is a blog post.
type Article struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Body        string    `json:"body"`
	Author      string    `json:"author"`
	PublishedAt time.Time `json:"published_at"`
}

// Story is a short narrative tied to a name or religion.
type Story struct {
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Summary     string    `json:"summary"`
	Body        string    `json:"body"`
	Religion    string    `json:"religion"`
	PublishedAt time.Time `json:"published_at"`
}

// list is the envelope used by every collection endpoint.
type list[T any] struct {
	Data []T `json:"data"`
}
