package models

import "time"

// Article is a single published post owned by exactly one Account.
// OwnerID is fixed at creation time; edits may change the title, the
// publish date and the body, never the owner.
type Article struct {
	// ArticleID is the internal unique identifier of the article.
	ArticleID int64 `json:"id"`

	// Title is the article headline. Must be non-empty.
	Title string `json:"title"`

	// PublishDate is the calendar date shown to readers.
	PublishDate Date `json:"date"`

	// Body is the article text.
	Body string `json:"body"`

	// OwnerID references the owning Account. Never taken from client input;
	// always derived from the authenticated session.
	OwnerID int64 `json:"owner_id"`

	// CreatedAt and UpdatedAt are server-assigned timestamps.
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// TableName returns the name of the database table
// associated with the Article model.
func (a Article) TableName() string {
	return "articles"
}

// ArticleSummary is the lightweight listing shape used for the owner's
// dashboard: id, title and date only.
type ArticleSummary struct {
	ArticleID   int64  `json:"id"`
	Title       string `json:"title"`
	PublishDate Date   `json:"date"`
}
