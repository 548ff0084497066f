// Package models contains data structures for the application's domain models.
package models

import "time"

// Media is a single attachment on a post.
type Media struct {
	Type string `json:"type"`
	URL  string `json:"url"`
}

// Post represents a feed post.
//
// Hashtags are always derived from Content and never settable on their own.
// Liked and Bookmarked are single per-record flags: the collection models one
// viewer session, not a per-user relation.
type Post struct {
	ID         int       `json:"id"`
	AuthorID   int       `json:"author_id"`
	Content    string    `json:"content"`
	Location   string    `json:"location,omitempty"`
	Media      []Media   `json:"media"`
	Hashtags   []string  `json:"hashtags"`
	Likes      int       `json:"likes"`
	Comments   int       `json:"comments"`
	Shares     int       `json:"shares"`
	Liked      bool      `json:"liked"`
	Bookmarked bool      `json:"bookmarked"`
	Timestamp  time.Time `json:"timestamp"`
	// Author is attached at read time; nil when the lookup fails.
	Author *User `json:"author,omitempty"`
}

// TrendingHashtag is one entry of the trending aggregation.
type TrendingHashtag struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}
