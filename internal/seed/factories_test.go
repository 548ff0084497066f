package seed

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseconnect/internal/models"
	"pulseconnect/internal/service"
	"pulseconnect/internal/store"
)

func newFactory(t *testing.T) (*Factory, store.UserStore, store.PostStore, store.StoryStore) {
	t.Helper()
	users := store.NewUserStore(nil)
	posts := store.NewPostStore(nil)
	stories := store.NewStoryStore(nil)
	return NewFactory(users, posts, stories, SeedOptions{Seed: 42}), users, posts, stories
}

func TestFactory_CreateUser(t *testing.T) {
	f, users, _, _ := newFactory(t)
	ctx := context.Background()

	u := f.CreateUser(ctx)
	assert.NotZero(t, u.ID)
	assert.NotEmpty(t, u.Username)
	assert.Equal(t, 1, users.Len())

	overridden := f.CreateUser(ctx, func(u *models.User) {
		u.Username = "fixed_name"
		u.Verified = true
	})
	assert.Equal(t, "fixed_name", overridden.Username)
	assert.True(t, overridden.Verified)
	assert.Greater(t, overridden.ID, u.ID)
}

func TestFactory_CreatePost(t *testing.T) {
	f, _, posts, _ := newFactory(t)
	ctx := context.Background()

	author := f.CreateUser(ctx)
	p := f.CreatePost(ctx, author)

	assert.Equal(t, author.ID, p.AuthorID)
	assert.NotEmpty(t, p.Hashtags, "generated content carries hashtags")
	assert.Equal(t, service.ExtractHashtags(p.Content), p.Hashtags)
	assert.Equal(t, 1, posts.Len())
}

func TestFactory_CreatePost_OverrideKeepsDerivation(t *testing.T) {
	f, _, _, _ := newFactory(t)
	ctx := context.Background()

	author := f.CreateUser(ctx)
	p := f.CreatePost(ctx, author, func(p *models.Post) {
		p.Content = "rewritten #only_this"
	})
	assert.Equal(t, []string{"only_this"}, p.Hashtags)
}

func TestFactory_CreateStory(t *testing.T) {
	f, _, _, stories := newFactory(t)
	ctx := context.Background()

	owner := f.CreateUser(ctx)
	st := f.CreateStory(ctx, owner)

	assert.Equal(t, owner.ID, st.UserID)
	assert.Equal(t, models.StoryTypeImage, st.Type)
	assert.False(t, st.Viewed)
	require.Equal(t, 1, stories.Len())
}
