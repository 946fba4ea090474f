package domain_models

import "time"

// BlogPost is additionally addressable by its unique Slug. Slug uniqueness is
// guaranteed by the seed set; posts are never created through the API.
type BlogPost struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Slug        string    `json:"slug"`
	Excerpt     string    `json:"excerpt"`
	Content     string    `json:"content"`
	ImageURL    string    `json:"imageUrl"`
	Category    string    `json:"category"`
	Author      string    `json:"author"`
	AuthorImage string    `json:"authorImage,omitempty"`
	ReadTime    int       `json:"readTime"`
	PublishedAt time.Time `json:"publishedAt"`
	Featured    bool      `json:"featured"`
}
