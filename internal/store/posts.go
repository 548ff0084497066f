package store

import (
	"context"
	"sync"

	"pulseconnect/internal/models"
	"pulseconnect/internal/observability"
)

// PostStore defines storage operations for posts.
type PostStore interface {
	// List returns the collection in storage order (newest insertions first).
	List(ctx context.Context) []models.Post
	GetByID(ctx context.Context, id int) (*models.Post, error)
	Insert(ctx context.Context, post *models.Post)
	Update(ctx context.Context, post *models.Post) error
	Delete(ctx context.Context, id int) (*models.Post, error)
	Len() int
}

type postStore struct {
	mu    sync.RWMutex
	posts []models.Post
	log   *observability.StoreLogger
}

// NewPostStore returns a PostStore seeded with the given records.
func NewPostStore(posts []models.Post) PostStore {
	s := &postStore{
		posts: make([]models.Post, 0, len(posts)),
		log:   observability.NewStoreLogger("posts"),
	}
	for i := range posts {
		s.posts = append(s.posts, clonePost(&posts[i]))
	}
	observability.SetStoreSize("posts", len(s.posts))
	return s
}

func (s *postStore) List(_ context.Context) []models.Post {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]models.Post, 0, len(s.posts))
	for i := range s.posts {
		out = append(out, clonePost(&s.posts[i]))
	}
	return out
}

func (s *postStore) GetByID(ctx context.Context, id int) (*models.Post, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			p := clonePost(&s.posts[i])
			return &p, nil
		}
	}
	err := models.NewNotFoundError("Post", id)
	s.log.LogError(ctx, err, "get")
	return nil, err
}

// Insert assigns the next identifier (max existing + 1) and prepends the
// record, keeping newest-first storage order. The caller's struct is updated
// with the assigned ID.
func (s *postStore) Insert(ctx context.Context, post *models.Post) {
	s.mu.Lock()
	defer s.mu.Unlock()
	post.ID = nextID(len(s.posts), func(i int) int { return s.posts[i].ID })
	s.posts = append([]models.Post{clonePost(post)}, s.posts...)
	observability.SetStoreSize("posts", len(s.posts))
	s.log.LogWrite(ctx, "insert", map[string]interface{}{"id": post.ID, "author_id": post.AuthorID})
}

func (s *postStore) Update(ctx context.Context, post *models.Post) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == post.ID {
			s.posts[i] = clonePost(post)
			s.log.LogWrite(ctx, "update", map[string]interface{}{"id": post.ID})
			return nil
		}
	}
	err := models.NewNotFoundError("Post", post.ID)
	s.log.LogError(ctx, err, "update")
	return err
}

func (s *postStore) Delete(ctx context.Context, id int) (*models.Post, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.posts {
		if s.posts[i].ID == id {
			removed := clonePost(&s.posts[i])
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			observability.SetStoreSize("posts", len(s.posts))
			s.log.LogWrite(ctx, "delete", map[string]interface{}{"id": id})
			return &removed, nil
		}
	}
	err := models.NewNotFoundError("Post", id)
	s.log.LogError(ctx, err, "delete")
	return nil, err
}

func (s *postStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.posts)
}

// clonePost copies a post including its slices. The stored record never
// carries an Author; enrichment happens at the service layer.
func clonePost(p *models.Post) models.Post {
	out := *p
	out.Author = nil
	if p.Media != nil {
		out.Media = make([]models.Media, len(p.Media))
		copy(out.Media, p.Media)
	}
	if p.Hashtags != nil {
		out.Hashtags = make([]string, len(p.Hashtags))
		copy(out.Hashtags, p.Hashtags)
	}
	return out
}
