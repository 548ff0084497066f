package service

import (
	"context"
	"sort"
	"strings"
	"time"

	"pulseconnect/internal/models"
	"pulseconnect/internal/store"
)

const (
	// postSearchLimit caps SearchPosts results.
	postSearchLimit = 10
	// trendingLimit caps GetTrendingHashtags results.
	trendingLimit = 10
)

// PostService owns the post collection, derives hashtags from content,
// attaches author records at read time, and computes trending aggregates.
type PostService struct {
	posts store.PostStore
	// users resolves authors and the current session user; reads only.
	users *UserService
	// userStore persists the author post-count side effect of Create.
	userStore store.UserStore
	latency   Latency
}

// CreatePostInput carries the caller-settable fields for a new post.
type CreatePostInput struct {
	Content  string
	Location string
	Media    []models.Media
}

// UpdatePostInput is the allow-list of fields an update may change. Hashtags
// are absent on purpose: they are always re-derived from content.
type UpdatePostInput struct {
	Content  *string
	Location *string
	Media    *[]models.Media
}

// NewPostService returns a PostService over the given stores.
func NewPostService(posts store.PostStore, users *UserService, userStore store.UserStore, latency Latency) *PostService {
	return &PostService{
		posts:     posts,
		users:     users,
		userStore: userStore,
		latency:   latency,
	}
}

// GetAll returns all posts sorted newest first, each enriched with its
// author. A failed author lookup leaves Author nil rather than failing the
// whole read.
func (s *PostService) GetAll(ctx context.Context) (posts []models.Post, err error) {
	ctx, done := instrument(ctx, "post", "get_all")
	defer done(&err)
	s.latency.sleep(400 * time.Millisecond)

	posts = s.posts.List(ctx)
	sortByTimestampDesc(posts)
	for i := range posts {
		posts[i].Author = s.lookupAuthor(ctx, posts[i].AuthorID)
	}
	return posts, nil
}

// GetByID returns the post with the given identifier, enriched with its
// author (nil on lookup failure).
func (s *PostService) GetByID(ctx context.Context, id int) (post *models.Post, err error) {
	ctx, done := instrument(ctx, "post", "get_by_id")
	defer done(&err)
	s.latency.sleep(200 * time.Millisecond)

	post, err = s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Author = s.lookupAuthor(ctx, post.AuthorID)
	return post, nil
}

// GetByUserID returns the given author's posts sorted newest first. Results
// are not enriched: the caller already holds the author.
func (s *PostService) GetByUserID(ctx context.Context, userID int) (posts []models.Post, err error) {
	ctx, done := instrument(ctx, "post", "get_by_user_id")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	posts = []models.Post{}
	for _, p := range s.posts.List(ctx) {
		if p.AuthorID == userID {
			posts = append(posts, p)
		}
	}
	sortByTimestampDesc(posts)
	return posts, nil
}

// Create prepends a new post authored by the current user, derives its
// hashtags from content, and increments the author's post count. Fails with
// an UNAUTHENTICATED error when no current user resolves.
func (s *PostService) Create(ctx context.Context, in CreatePostInput) (post *models.Post, err error) {
	ctx, done := instrument(ctx, "post", "create")
	defer done(&err)
	s.latency.sleep(500 * time.Millisecond)

	current, err := s.users.GetCurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if current == nil {
		return nil, models.NewUnauthenticatedError("User not authenticated")
	}

	media := in.Media
	if media == nil {
		media = []models.Media{}
	}
	post = &models.Post{
		AuthorID:  current.ID,
		Content:   in.Content,
		Location:  in.Location,
		Media:     media,
		Hashtags:  ExtractHashtags(in.Content),
		Timestamp: time.Now(),
	}
	s.posts.Insert(ctx, post)

	current.PostsCount++
	if err := s.userStore.Update(ctx, current); err != nil {
		return nil, err
	}

	post.Author = current
	return post, nil
}

// Update merges the supplied fields onto the existing record and re-derives
// hashtags from the resulting content. The identifier is never changed. The
// result is enriched with its author (nil on lookup failure).
func (s *PostService) Update(ctx context.Context, id int, in UpdatePostInput) (post *models.Post, err error) {
	ctx, done := instrument(ctx, "post", "update")
	defer done(&err)
	s.latency.sleep(350 * time.Millisecond)

	post, err = s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Content != nil {
		post.Content = *in.Content
	}
	if in.Location != nil {
		post.Location = *in.Location
	}
	if in.Media != nil {
		post.Media = *in.Media
	}
	post.Hashtags = ExtractHashtags(post.Content)

	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	post.Author = s.lookupAuthor(ctx, post.AuthorID)
	return post, nil
}

// Delete removes and returns the post with the given identifier.
func (s *PostService) Delete(ctx context.Context, id int) (post *models.Post, err error) {
	ctx, done := instrument(ctx, "post", "delete")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	return s.posts.Delete(ctx, id)
}

// LikePost toggles the liked flag and moves the like counter in the same
// direction, flooring it at zero.
func (s *PostService) LikePost(ctx context.Context, id int) (post *models.Post, err error) {
	ctx, done := instrument(ctx, "post", "like_post")
	defer done(&err)
	s.latency.sleep(200 * time.Millisecond)

	post, err = s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Liked = !post.Liked
	if post.Liked {
		post.Likes++
	} else if post.Likes > 0 {
		post.Likes--
	}
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// BookmarkPost toggles the bookmarked flag. No counter is involved.
func (s *PostService) BookmarkPost(ctx context.Context, id int) (post *models.Post, err error) {
	ctx, done := instrument(ctx, "post", "bookmark_post")
	defer done(&err)
	s.latency.sleep(200 * time.Millisecond)

	post, err = s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Bookmarked = !post.Bookmarked
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// SharePost increments the share counter. Shares only ever go up.
func (s *PostService) SharePost(ctx context.Context, id int) (post *models.Post, err error) {
	ctx, done := instrument(ctx, "post", "share_post")
	defer done(&err)
	s.latency.sleep(250 * time.Millisecond)

	post, err = s.posts.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	post.Shares++
	if err := s.posts.Update(ctx, post); err != nil {
		return nil, err
	}
	return post, nil
}

// SearchPosts returns up to 10 posts whose content, hashtags, or location
// contain the query, case-insensitively, in collection order. An empty or
// whitespace-only query yields an empty result.
func (s *PostService) SearchPosts(ctx context.Context, query string) (posts []models.Post, err error) {
	ctx, done := instrument(ctx, "post", "search_posts")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	term := strings.ToLower(strings.TrimSpace(query))
	posts = []models.Post{}
	if term == "" {
		return posts, nil
	}
	for _, p := range s.posts.List(ctx) {
		if postMatches(&p, term) {
			posts = append(posts, p)
			if len(posts) == postSearchLimit {
				break
			}
		}
	}
	return posts, nil
}

// GetTrendingHashtags aggregates hashtag frequency across the whole
// collection and returns the top 10 by count. Ties keep first-encountered
// order; the count is a static full-corpus total, not time-windowed.
func (s *PostService) GetTrendingHashtags(ctx context.Context) (trending []models.TrendingHashtag, err error) {
	ctx, done := instrument(ctx, "post", "get_trending_hashtags")
	defer done(&err)
	s.latency.sleep(200 * time.Millisecond)

	counts := make(map[string]int)
	order := []string{}
	for _, p := range s.posts.List(ctx) {
		for _, tag := range p.Hashtags {
			if _, seen := counts[tag]; !seen {
				order = append(order, tag)
			}
			counts[tag]++
		}
	}

	trending = make([]models.TrendingHashtag, 0, len(order))
	for _, tag := range order {
		trending = append(trending, models.TrendingHashtag{Tag: tag, Count: counts[tag]})
	}
	sort.SliceStable(trending, func(i, j int) bool {
		return trending[i].Count > trending[j].Count
	})
	if len(trending) > trendingLimit {
		trending = trending[:trendingLimit]
	}
	return trending, nil
}

// lookupAuthor resolves a post's author, degrading to nil on any failure.
func (s *PostService) lookupAuthor(ctx context.Context, authorID int) *models.User {
	author, err := s.users.GetByID(ctx, authorID)
	if err != nil {
		return nil
	}
	return author
}

func postMatches(p *models.Post, term string) bool {
	if strings.Contains(strings.ToLower(p.Content), term) {
		return true
	}
	for _, tag := range p.Hashtags {
		if strings.Contains(strings.ToLower(tag), term) {
			return true
		}
	}
	return p.Location != "" && strings.Contains(strings.ToLower(p.Location), term)
}

func sortByTimestampDesc(posts []models.Post) {
	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Timestamp.After(posts[j].Timestamp)
	})
}
