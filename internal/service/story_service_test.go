package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"pulseconnect/internal/models"
)

func TestStoryService_GetAll(t *testing.T) {
	t.Parallel()

	t.Run("sorted newest first and enriched", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(sampleUsers(), nil, sampleStories())
		stories, err := env.stories.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, stories, 2)
		assert.Equal(t, 2, stories[0].ID)
		assert.Equal(t, 1, stories[1].ID)
		for _, st := range stories {
			require.NotNil(t, st.User)
			assert.Equal(t, st.UserID, st.User.ID)
		}
	})

	t.Run("failed user lookup degrades to nil", func(t *testing.T) {
		t.Parallel()
		stories := []models.Story{{ID: 1, UserID: 77, Timestamp: at(20), Type: models.StoryTypeImage}}
		env := newTestEnv(sampleUsers(), nil, stories)
		out, err := env.stories.GetAll(context.Background())
		require.NoError(t, err)
		require.Len(t, out, 1)
		assert.Nil(t, out[0].User)
	})
}

func TestStoryService_GetByID(t *testing.T) {
	t.Parallel()

	env := newTestEnv(sampleUsers(), nil, sampleStories())

	story, err := env.stories.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, story.ID)
	require.NotNil(t, story.User)

	_, err = env.stories.GetByID(context.Background(), 404)
	assertNotFound(t, err)
}

func TestStoryService_GetByUserID(t *testing.T) {
	t.Parallel()

	stories := append(sampleStories(), models.Story{ID: 3, UserID: 2, Timestamp: at(23), Type: models.StoryTypeImage})
	env := newTestEnv(sampleUsers(), nil, stories)

	out, err := env.stories.GetByUserID(context.Background(), 2)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 3, out[0].ID, "newest first")
	assert.Equal(t, 1, out[1].ID)
	for _, st := range out {
		assert.Nil(t, st.User, "per-user listing is not enriched")
	}
}

func TestStoryService_Create(t *testing.T) {
	t.Parallel()

	t.Run("fails without a current user", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv([]models.User{{ID: 2, Username: "maya_sunfield"}}, nil, nil)
		_, err := env.stories.Create(context.Background(), CreateStoryInput{})
		assertUnauthenticated(t, err)
	})

	t.Run("applies defaults and max plus one id", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(sampleUsers(), nil, sampleStories())
		story, err := env.stories.Create(context.Background(), CreateStoryInput{})
		require.NoError(t, err)
		assert.Equal(t, 3, story.ID)
		assert.Equal(t, 1, story.UserID)
		assert.False(t, story.Viewed)
		assert.Equal(t, models.StoryTypeImage, story.Type)
		require.NotNil(t, story.User)
	})

	t.Run("keeps an explicit type", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(sampleUsers(), nil, nil)
		story, err := env.stories.Create(context.Background(), CreateStoryInput{Type: "video"})
		require.NoError(t, err)
		assert.Equal(t, "video", story.Type)
	})
}

func TestStoryService_Update(t *testing.T) {
	t.Parallel()

	env := newTestEnv(sampleUsers(), nil, sampleStories())
	viewed := true
	story, err := env.stories.Update(context.Background(), 1, UpdateStoryInput{Viewed: &viewed})
	require.NoError(t, err)
	assert.Equal(t, 1, story.ID)
	assert.True(t, story.Viewed)

	_, err = env.stories.Update(context.Background(), 404, UpdateStoryInput{})
	assertNotFound(t, err)
}

func TestStoryService_MarkAsViewed(t *testing.T) {
	t.Parallel()

	t.Run("is one-way and idempotent", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(sampleUsers(), nil, sampleStories())
		ctx := context.Background()

		first, err := env.stories.MarkAsViewed(ctx, 1)
		require.NoError(t, err)
		assert.True(t, first.Viewed)

		second, err := env.stories.MarkAsViewed(ctx, 1)
		require.NoError(t, err)
		assert.True(t, second.Viewed)

		stored, err := env.stories.GetByID(ctx, 1)
		require.NoError(t, err)
		assert.True(t, stored.Viewed)
	})

	t.Run("unknown id fails with not found", func(t *testing.T) {
		t.Parallel()
		env := newTestEnv(sampleUsers(), nil, sampleStories())
		_, err := env.stories.MarkAsViewed(context.Background(), 404)
		assertNotFound(t, err)
	})
}

func TestStoryService_Delete(t *testing.T) {
	t.Parallel()

	env := newTestEnv(sampleUsers(), nil, sampleStories())
	ctx := context.Background()

	removed, err := env.stories.Delete(ctx, 2)
	require.NoError(t, err)
	assert.Equal(t, 2, removed.ID)

	_, err = env.stories.Delete(ctx, 2)
	assertNotFound(t, err)
}
