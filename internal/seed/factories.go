// Package seed provides helpers to create test and demo data for the
// in-memory stores. These helpers are intended for development and testing
// only; production-shaped startup data comes from the fixtures package.
package seed

import (
	"context"
	"fmt"
	"math/rand"
	"time"

	"github.com/brianvoe/gofakeit/v6"

	"pulseconnect/internal/models"
	"pulseconnect/internal/service"
	"pulseconnect/internal/store"
)

// SeedOptions control generated data.
type SeedOptions struct {
	// MaxDays bounds how far back generated timestamps spread. Defaults to 90.
	MaxDays int
	// Seed fixes the random source for reproducible data. 0 means time-based.
	Seed int64
}

// Factory builds domain entities and inserts them into the stores.
type Factory struct {
	users   store.UserStore
	posts   store.PostStore
	stories store.StoryStore
	opts    SeedOptions
	r       *rand.Rand
}

// NewFactory creates a new Factory bound to the provided stores.
func NewFactory(users store.UserStore, posts store.PostStore, stories store.StoryStore, opts SeedOptions) *Factory {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	gofakeit.Seed(seed)
	if opts.MaxDays <= 0 {
		opts.MaxDays = 90
	}
	// #nosec G404: acceptable for seeding
	return &Factory{
		users:   users,
		posts:   posts,
		stories: stories,
		opts:    opts,
		r:       rand.New(rand.NewSource(seed)),
	}
}

// CreateUser constructs and inserts a sample user. Optional override
// functions may modify the generated user before insertion.
func (f *Factory) CreateUser(ctx context.Context, overrides ...func(*models.User)) *models.User {
	user := &models.User{
		Username:    fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		DisplayName: gofakeit.Name(),
		Avatar:      fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Bio:         gofakeit.Sentence(10),
		Verified:    f.r.Intn(10) == 0,
		Followers:   gofakeit.Number(0, 50000),
		Following:   gofakeit.Number(0, 2000),
	}

	for _, override := range overrides {
		override(user)
	}

	f.users.Insert(ctx, user)
	return user
}

// CreatePost constructs and inserts a sample post for the given user. The
// content carries one or two hashtags so search and trending have material
// to work with.
func (f *Factory) CreatePost(ctx context.Context, user *models.User, overrides ...func(*models.Post)) *models.Post {
	content := fmt.Sprintf("%s #%s", gofakeit.Sentence(8), gofakeit.Word())
	if f.r.Intn(2) == 0 {
		content = fmt.Sprintf("%s #%s", content, gofakeit.Word())
	}

	post := &models.Post{
		AuthorID: user.ID,
		Content:  content,
		Hashtags: service.ExtractHashtags(content),
		Media: []models.Media{
			{Type: "image", URL: fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID())},
		},
		Likes:     gofakeit.Number(0, 5000),
		Comments:  gofakeit.Number(0, 400),
		Shares:    gofakeit.Number(0, 300),
		Timestamp: f.pastTimestamp(),
	}
	if f.r.Intn(3) == 0 {
		post.Location = gofakeit.City()
	}

	for _, override := range overrides {
		override(post)
	}
	// keep the derivation invariant even when an override rewrites content
	post.Hashtags = service.ExtractHashtags(post.Content)

	f.posts.Insert(ctx, post)
	return post
}

// CreateStory constructs and inserts a sample story for the given user.
func (f *Factory) CreateStory(ctx context.Context, user *models.User, overrides ...func(*models.Story)) *models.Story {
	story := &models.Story{
		UserID:    user.ID,
		Timestamp: f.pastTimestamp(),
		Type:      models.StoryTypeImage,
	}

	for _, override := range overrides {
		override(story)
	}

	f.stories.Insert(ctx, story)
	return story
}

// pastTimestamp returns a time spread over the last MaxDays days.
func (f *Factory) pastTimestamp() time.Time {
	daysBack := f.r.Intn(f.opts.MaxDays)
	hoursBack := f.r.Intn(24)
	minsBack := f.r.Intn(60)
	return time.Now().Add(-time.Duration(daysBack)*24*time.Hour -
		time.Duration(hoursBack)*time.Hour -
		time.Duration(minsBack)*time.Minute)
}
