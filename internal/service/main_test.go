package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"pulseconnect/internal/models"
	"pulseconnect/internal/store"
)

const testSentinel = "current_user"

// testEnv bundles the three services over fresh stores with delays disabled.
type testEnv struct {
	users   *UserService
	posts   *PostService
	stories *StoryService

	userStore  store.UserStore
	postStore  store.PostStore
	storyStore store.StoryStore
}

func newTestEnv(users []models.User, posts []models.Post, stories []models.Story) *testEnv {
	us := store.NewUserStore(users)
	ps := store.NewPostStore(posts)
	ss := store.NewStoryStore(stories)
	userSvc := NewUserService(us, testSentinel, NoLatency)
	return &testEnv{
		users:      userSvc,
		posts:      NewPostService(ps, userSvc, us, NoLatency),
		stories:    NewStoryService(ss, userSvc, NoLatency),
		userStore:  us,
		postStore:  ps,
		storyStore: ss,
	}
}

func sampleUsers() []models.User {
	return []models.User{
		{ID: 1, Username: testSentinel, DisplayName: "Alex Rivera", Followers: 10, Following: 5, PostsCount: 2},
		{ID: 2, Username: "maya_sunfield", DisplayName: "Maya Sunfield", Verified: true, Followers: 100},
		{ID: 3, Username: "devon_okafor", DisplayName: "Devon Okafor", Followers: 50, Following: 20},
	}
}

func at(day int) time.Time {
	return time.Date(2025, 8, day, 12, 0, 0, 0, time.UTC)
}

func samplePosts() []models.Post {
	return []models.Post{
		{ID: 1, AuthorID: 2, Content: "Dunes at dusk #sunset #Travel", Hashtags: []string{"sunset", "Travel"}, Likes: 5, Timestamp: at(20)},
		{ID: 2, AuthorID: 3, Content: "Taco crawl recap #tacos", Hashtags: []string{"tacos"}, Location: "Austin", Likes: 2, Timestamp: at(22)},
		{ID: 3, AuthorID: 2, Content: "Packing light #Travel", Hashtags: []string{"Travel"}, Likes: 9, Timestamp: at(21)},
	}
}

func sampleStories() []models.Story {
	return []models.Story{
		{ID: 1, UserID: 2, Timestamp: at(20), Type: models.StoryTypeImage},
		{ID: 2, UserID: 3, Timestamp: at(22), Type: models.StoryTypeImage},
	}
}

func assertNotFound(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	assert.True(t, models.IsNotFound(err), "expected NOT_FOUND, got %v", err)
}

func assertUnauthenticated(t *testing.T, err error) {
	t.Helper()
	assert.Error(t, err)
	assert.True(t, models.IsUnauthenticated(err), "expected UNAUTHENTICATED, got %v", err)
}
