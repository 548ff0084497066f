// Package fixtures loads the static datasets the services start from. The
// datasets are embedded YAML files, read once at startup; everything after
// that lives in memory.
package fixtures

import (
	"embed"
	"fmt"
	"time"

	"gopkg.in/yaml.v3"

	"pulseconnect/internal/models"
	"pulseconnect/internal/service"
)

//go:embed data/*.yml
var dataFS embed.FS

// Dataset holds the initial contents of all three collections.
type Dataset struct {
	Users   []models.User
	Posts   []models.Post
	Stories []models.Story
}

type userRecord struct {
	ID          int    `yaml:"id"`
	Username    string `yaml:"username"`
	DisplayName string `yaml:"display_name"`
	Avatar      string `yaml:"avatar"`
	Bio         string `yaml:"bio"`
	Verified    bool   `yaml:"verified"`
	Followers   int    `yaml:"followers"`
	Following   int    `yaml:"following"`
	PostsCount  int    `yaml:"posts_count"`
}

type mediaRecord struct {
	Type string `yaml:"type"`
	URL  string `yaml:"url"`
}

type postRecord struct {
	ID         int           `yaml:"id"`
	AuthorID   int           `yaml:"author_id"`
	Content    string        `yaml:"content"`
	Location   string        `yaml:"location"`
	Media      []mediaRecord `yaml:"media"`
	Likes      int           `yaml:"likes"`
	Comments   int           `yaml:"comments"`
	Shares     int           `yaml:"shares"`
	Liked      bool          `yaml:"liked"`
	Bookmarked bool          `yaml:"bookmarked"`
	Timestamp  string        `yaml:"timestamp"`
}

type storyRecord struct {
	ID        int    `yaml:"id"`
	UserID    int    `yaml:"user_id"`
	Timestamp string `yaml:"timestamp"`
	Viewed    bool   `yaml:"viewed"`
	Type      string `yaml:"type"`
}

// Load parses the embedded datasets. Post hashtags are derived from content
// here, not read from the files, so the derivation invariant holds from the
// first record on.
func Load() (*Dataset, error) {
	var users []userRecord
	if err := unmarshalFile("data/users.yml", &users); err != nil {
		return nil, err
	}
	var posts []postRecord
	if err := unmarshalFile("data/posts.yml", &posts); err != nil {
		return nil, err
	}
	var stories []storyRecord
	if err := unmarshalFile("data/stories.yml", &stories); err != nil {
		return nil, err
	}

	ds := &Dataset{}
	for _, r := range users {
		ds.Users = append(ds.Users, models.User{
			ID:          r.ID,
			Username:    r.Username,
			DisplayName: r.DisplayName,
			Avatar:      r.Avatar,
			Bio:         r.Bio,
			Verified:    r.Verified,
			Followers:   r.Followers,
			Following:   r.Following,
			PostsCount:  r.PostsCount,
		})
	}
	for _, r := range posts {
		ts, err := parseTimestamp("posts", r.ID, r.Timestamp)
		if err != nil {
			return nil, err
		}
		media := make([]models.Media, 0, len(r.Media))
		for _, m := range r.Media {
			media = append(media, models.Media{Type: m.Type, URL: m.URL})
		}
		ds.Posts = append(ds.Posts, models.Post{
			ID:         r.ID,
			AuthorID:   r.AuthorID,
			Content:    r.Content,
			Location:   r.Location,
			Media:      media,
			Hashtags:   service.ExtractHashtags(r.Content),
			Likes:      r.Likes,
			Comments:   r.Comments,
			Shares:     r.Shares,
			Liked:      r.Liked,
			Bookmarked: r.Bookmarked,
			Timestamp:  ts,
		})
	}
	for _, r := range stories {
		ts, err := parseTimestamp("stories", r.ID, r.Timestamp)
		if err != nil {
			return nil, err
		}
		storyType := r.Type
		if storyType == "" {
			storyType = models.StoryTypeImage
		}
		ds.Stories = append(ds.Stories, models.Story{
			ID:        r.ID,
			UserID:    r.UserID,
			Timestamp: ts,
			Viewed:    r.Viewed,
			Type:      storyType,
		})
	}
	return ds, nil
}

func unmarshalFile(name string, out interface{}) error {
	raw, err := dataFS.ReadFile(name)
	if err != nil {
		return fmt.Errorf("read fixture %s: %w", name, err)
	}
	if err := yaml.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("parse fixture %s: %w", name, err)
	}
	return nil
}

func parseTimestamp(table string, id int, raw string) (time.Time, error) {
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, fmt.Errorf("fixture %s id %d: bad timestamp %q: %w", table, id, raw, err)
	}
	return ts, nil
}
