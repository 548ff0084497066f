// Package models contains data structures for the application's domain models.
package models

import "time"

// StoryTypeImage is the default story type.
const StoryTypeImage = "image"

// Story represents an ephemeral story entry.
//
// Viewed is one-way: once set it is never cleared. Stories carry no expiry;
// the collection lives for the process lifetime.
type Story struct {
	ID        int       `json:"id"`
	UserID    int       `json:"user_id"`
	Timestamp time.Time `json:"timestamp"`
	Viewed    bool      `json:"viewed"`
	Type      string    `json:"type"`
	// User is attached at read time; nil when the lookup fails.
	User *User `json:"user,omitempty"`
}
