package store

import (
	"context"
	"sync"

	"pulseconnect/internal/models"
	"pulseconnect/internal/observability"
)

// StoryStore defines storage operations for stories.
type StoryStore interface {
	// List returns the collection in storage order (newest insertions first).
	List(ctx context.Context) []models.Story
	GetByID(ctx context.Context, id int) (*models.Story, error)
	Insert(ctx context.Context, story *models.Story)
	Update(ctx context.Context, story *models.Story) error
	Delete(ctx context.Context, id int) (*models.Story, error)
	Len() int
}

type storyStore struct {
	mu      sync.RWMutex
	stories []models.Story
	log     *observability.StoreLogger
}

// NewStoryStore returns a StoryStore seeded with the given records.
func NewStoryStore(stories []models.Story) StoryStore {
	s := &storyStore{
		stories: make([]models.Story, 0, len(stories)),
		log:     observability.NewStoreLogger("stories"),
	}
	for i := range stories {
		s.stories = append(s.stories, cloneStory(&stories[i]))
	}
	observability.SetStoreSize("stories", len(s.stories))
	return s
}

func (s *storyStore) List(_ context.Context) []models.Story {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Story, 0, len(s.stories))
	for i := range s.stories {
		out = append(out, cloneStory(&s.stories[i]))
	}
	return out
}

func (s *storyStore) GetByID(ctx context.Context, id int) (*models.Story, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.stories {
		if s.stories[i].ID == id {
			st := cloneStory(&s.stories[i])
			return &st, nil
		}
	}
	err := models.NewNotFoundError("Story", id)
	s.log.LogError(ctx, err, "get")
	return nil, err
}

// Insert assigns the next identifier (max existing + 1) and prepends the
// record. The caller's struct is updated with the assigned ID.
func (s *storyStore) Insert(ctx context.Context, story *models.Story) {
	s.mu.Lock()
	defer s.mu.Unlock()
	story.ID = nextID(len(s.stories), func(i int) int { return s.stories[i].ID })
	s.stories = append([]models.Story{cloneStory(story)}, s.stories...)
	observability.SetStoreSize("stories", len(s.stories))
	s.log.LogWrite(ctx, "insert", map[string]interface{}{"id": story.ID, "user_id": story.UserID})
}

func (s *storyStore) Update(ctx context.Context, story *models.Story) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stories {
		if s.stories[i].ID == story.ID {
			s.stories[i] = cloneStory(story)
			s.log.LogWrite(ctx, "update", map[string]interface{}{"id": story.ID})
			return nil
		}
	}
	err := models.NewNotFoundError("Story", story.ID)
	s.log.LogError(ctx, err, "update")
	return err
}

func (s *storyStore) Delete(ctx context.Context, id int) (*models.Story, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.stories {
		if s.stories[i].ID == id {
			removed := cloneStory(&s.stories[i])
			s.stories = append(s.stories[:i], s.stories[i+1:]...)
			observability.SetStoreSize("stories", len(s.stories))
			s.log.LogWrite(ctx, "delete", map[string]interface{}{"id": id})
			return &removed, nil
		}
	}
	err := models.NewNotFoundError("Story", id)
	s.log.LogError(ctx, err, "delete")
	return nil, err
}

func (s *storyStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.stories)
}

// cloneStory copies a story. The stored record never carries a User;
// enrichment happens at the service layer.
func cloneStory(st *models.Story) models.Story {
	out := *st
	out.User = nil
	return out
}
