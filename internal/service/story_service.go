package service

import (
	"context"
	"sort"
	"time"

	"pulseconnect/internal/models"
	"pulseconnect/internal/store"
)

// StoryService owns the ephemeral story collection with one-way view
// tracking. Stories never expire on their own.
type StoryService struct {
	stories store.StoryStore
	// users resolves story owners and the current session user; reads only.
	users   *UserService
	latency Latency
}

// CreateStoryInput carries the caller-settable fields for a new story.
type CreateStoryInput struct {
	// Type defaults to "image" when empty.
	Type string
}

// UpdateStoryInput is the allow-list of fields an update may change.
type UpdateStoryInput struct {
	Type   *string
	Viewed *bool
}

// NewStoryService returns a StoryService over the given store.
func NewStoryService(stories store.StoryStore, users *UserService, latency Latency) *StoryService {
	return &StoryService{
		stories: stories,
		users:   users,
		latency: latency,
	}
}

// GetAll returns all stories sorted newest first, each enriched with its
// user. A failed user lookup leaves User nil rather than failing the read.
func (s *StoryService) GetAll(ctx context.Context) (stories []models.Story, err error) {
	ctx, done := instrument(ctx, "story", "get_all")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	stories = s.stories.List(ctx)
	sortStoriesByTimestampDesc(stories)
	for i := range stories {
		stories[i].User = s.lookupUser(ctx, stories[i].UserID)
	}
	return stories, nil
}

// GetByID returns the story with the given identifier, enriched with its
// user (nil on lookup failure).
func (s *StoryService) GetByID(ctx context.Context, id int) (story *models.Story, err error) {
	ctx, done := instrument(ctx, "story", "get_by_id")
	defer done(&err)
	s.latency.sleep(200 * time.Millisecond)

	story, err = s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	story.User = s.lookupUser(ctx, story.UserID)
	return story, nil
}

// GetByUserID returns the given user's stories sorted newest first. Results
// are not enriched: the caller already holds the user.
func (s *StoryService) GetByUserID(ctx context.Context, userID int) (stories []models.Story, err error) {
	ctx, done := instrument(ctx, "story", "get_by_user_id")
	defer done(&err)
	s.latency.sleep(250 * time.Millisecond)

	stories = []models.Story{}
	for _, st := range s.stories.List(ctx) {
		if st.UserID == userID {
			stories = append(stories, st)
		}
	}
	sortStoriesByTimestampDesc(stories)
	return stories, nil
}

// Create prepends a new story owned by the current user. Fails with an
// UNAUTHENTICATED error when no current user resolves.
func (s *StoryService) Create(ctx context.Context, in CreateStoryInput) (story *models.Story, err error) {
	ctx, done := instrument(ctx, "story", "create")
	defer done(&err)
	s.latency.sleep(400 * time.Millisecond)

	current, err := s.users.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, models.NewUnauthenticatedError("User not authenticated")
	}

	storyType := in.Type
	if storyType == "" {
		storyType = models.StoryTypeImage
	}
	story = &models.Story{
		UserID:    current.ID,
		Timestamp: time.Now(),
		Viewed:    false,
		Type:      storyType,
	}
	s.stories.Insert(ctx, story)

	story.User = current
	return story, nil
}

// Update merges the supplied fields onto the existing record. The identifier
// is never changed. The result is enriched with its user (nil on lookup
// failure).
func (s *StoryService) Update(ctx context.Context, id int, in UpdateStoryInput) (story *models.Story, err error) {
	ctx, done := instrument(ctx, "story", "update")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	story, err = s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Type != nil {
		story.Type = *in.Type
	}
	if in.Viewed != nil {
		story.Viewed = *in.Viewed
	}
	if err := s.stories.Update(ctx, story); err != nil {
		return nil, err
	}
	story.User = s.lookupUser(ctx, story.UserID)
	return story, nil
}

// Delete removes and returns the story with the given identifier.
func (s *StoryService) Delete(ctx context.Context, id int) (story *models.Story, err error) {
	ctx, done := instrument(ctx, "story", "delete")
	defer done(&err)
	s.latency.sleep(250 * time.Millisecond)

	return s.stories.Delete(ctx, id)
}

// MarkAsViewed sets the viewed flag. The flip is one-way and idempotent;
// there is no unview.
func (s *StoryService) MarkAsViewed(ctx context.Context, id int) (story *models.Story, err error) {
	ctx, done := instrument(ctx, "story", "mark_as_viewed")
	defer done(&err)
	s.latency.sleep(100 * time.Millisecond)

	story, err = s.stories.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	story.Viewed = true
	if err := s.stories.Update(ctx, story); err != nil {
		return nil, err
	}
	return story, nil
}

// lookupUser resolves a story's owner, degrading to nil on any failure.
func (s *StoryService) lookupUser(ctx context.Context, userID int) *models.User {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		return nil
	}
	return user
}

func sortStoriesByTimestampDesc(stories []models.Story) {
	sort.SliceStable(stories, func(i, j int) bool {
		return stories[i].Timestamp.After(stories[j].Timestamp)
	})
}
