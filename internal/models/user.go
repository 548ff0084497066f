// Package models contains data structures for the application's domain models.
package models

// User represents a member of the PulseConnect network.
type User struct {
	ID          int    `json:"id"`
	Username    string `json:"username"`
	DisplayName string `json:"display_name"`
	Avatar      string `json:"avatar"`
	Bio         string `json:"bio"`
	Verified    bool   `json:"verified"`
	Followers   int    `json:"followers"`
	Following   int    `json:"following"`
	PostsCount  int    `json:"posts_count"`
}
