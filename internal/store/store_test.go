package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseconnect/internal/models"
)

func TestUserStore_InsertAssignsMaxPlusOne(t *testing.T) {
	t.Parallel()

	t.Run("empty store starts at one", func(t *testing.T) {
		t.Parallel()
		s := NewUserStore(nil)
		u := &models.User{Username: "first"}
		s.Insert(context.Background(), u)
		assert.Equal(t, 1, u.ID)
	})

	t.Run("gaps do not get reused", func(t *testing.T) {
		t.Parallel()
		s := NewUserStore([]models.User{{ID: 3}, {ID: 9}, {ID: 5}})
		u := &models.User{Username: "next"}
		s.Insert(context.Background(), u)
		assert.Equal(t, 10, u.ID)
	})
}

func TestUserStore_ListReturnsDefensiveCopies(t *testing.T) {
	t.Parallel()

	s := NewUserStore([]models.User{{ID: 1, Username: "alpha"}})
	ctx := context.Background()

	out := s.List(ctx)
	out[0].Username = "mutated"

	fresh, err := s.GetByID(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alpha", fresh.Username, "caller mutation must not reach the store")
}

func TestUserStore_UpdateAndDelete(t *testing.T) {
	t.Parallel()

	s := NewUserStore([]models.User{{ID: 1, Username: "alpha"}, {ID: 2, Username: "beta"}})
	ctx := context.Background()

	require.NoError(t, s.Update(ctx, &models.User{ID: 2, Username: "gamma"}))
	u, err := s.GetByID(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, "gamma", u.Username)

	assert.Error(t, s.Update(ctx, &models.User{ID: 404}))

	removed, err := s.Delete(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, "alpha", removed.Username)
	assert.Equal(t, 1, s.Len())

	_, err = s.Delete(ctx, 1)
	assert.True(t, models.IsNotFound(err))
}

func TestPostStore_InsertPrepends(t *testing.T) {
	t.Parallel()

	s := NewPostStore([]models.Post{{ID: 1, Content: "old"}})
	ctx := context.Background()

	p := &models.Post{Content: "new"}
	s.Insert(ctx, p)
	assert.Equal(t, 2, p.ID)

	list := s.List(ctx)
	require.Len(t, list, 2)
	assert.Equal(t, "new", list[0].Content, "storage order is newest first")
}

func TestPostStore_ClonesSlicesAndDropsAuthor(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewPostStore(nil)
	p := &models.Post{
		Content:  "with media #tag",
		Media:    []models.Media{{Type: "image", URL: "u"}},
		Hashtags: []string{"tag"},
		Author:   &models.User{ID: 9},
	}
	s.Insert(ctx, p)

	got, err := s.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Nil(t, got.Author, "enrichment never persists")

	got.Media[0].URL = "changed"
	got.Hashtags[0] = "changed"

	again, err := s.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "u", again.Media[0].URL)
	assert.Equal(t, "tag", again.Hashtags[0])
}

func TestStoryStore_Roundtrip(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := NewStoryStore([]models.Story{{ID: 4, UserID: 1, Timestamp: time.Now(), Type: "image"}})

	st := &models.Story{UserID: 2, Type: "video", User: &models.User{ID: 2}}
	s.Insert(ctx, st)
	assert.Equal(t, 5, st.ID)

	got, err := s.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.Nil(t, got.User)
	assert.Equal(t, "video", got.Type)

	got.Viewed = true
	require.NoError(t, s.Update(ctx, got))

	stored, err := s.GetByID(ctx, 5)
	require.NoError(t, err)
	assert.True(t, stored.Viewed)

	_, err = s.GetByID(ctx, 404)
	assert.True(t, models.IsNotFound(err))
}
