package service

import (
	"context"
	"strings"
	"time"

	"pulseconnect/internal/models"
	"pulseconnect/internal/store"
)

// userSearchLimit caps SearchUsers results.
const userSearchLimit = 5

// UserService owns the canonical user collection.
type UserService struct {
	users           store.UserStore
	currentUsername string
	latency         Latency
}

// CreateUserInput carries the caller-settable fields for a new user.
// Counters and the verified flag default to their zero values.
type CreateUserInput struct {
	Username    string
	DisplayName string
	Avatar      string
	Bio         string
	Verified    bool
	Followers   int
	Following   int
	PostsCount  int
}

// UpdateUserInput is the allow-list of fields an update may change. The
// identifier is deliberately not representable here.
type UpdateUserInput struct {
	Username    *string
	DisplayName *string
	Avatar      *string
	Bio         *string
	Verified    *bool
	Followers   *int
	Following   *int
	PostsCount  *int
}

// NewUserService returns a UserService over the given store. currentUsername
// is the sentinel username that identifies the active session user.
func NewUserService(users store.UserStore, currentUsername string, latency Latency) *UserService {
	return &UserService{
		users:           users,
		currentUsername: currentUsername,
		latency:         latency,
	}
}

// GetAll returns a snapshot of the full collection.
func (s *UserService) GetAll(ctx context.Context) (users []models.User, err error) {
	ctx, done := instrument(ctx, "user", "get_all")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	return s.users.List(ctx), nil
}

// GetByID returns the user with the given identifier.
func (s *UserService) GetByID(ctx context.Context, id int) (user *models.User, err error) {
	ctx, done := instrument(ctx, "user", "get_by_id")
	defer done(&err)
	s.latency.sleep(200 * time.Millisecond)

	return s.users.GetByID(ctx, id)
}

// GetCurrentUser returns the session user identified by the sentinel
// username, or nil when no such record exists. Absence is a valid steady
// state, not an error.
func (s *UserService) GetCurrentUser(ctx context.Context) (user *models.User, err error) {
	ctx, done := instrument(ctx, "user", "get_current_user")
	defer done(&err)
	s.latency.sleep(200 * time.Millisecond)

	u, err := s.users.GetByUsername(ctx, s.currentUsername)
	if err != nil {
		if models.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return u, nil
}

// SearchUsers returns up to 5 users whose username or display name contains
// the query, case-insensitively, in collection order. An empty or
// whitespace-only query yields an empty result.
func (s *UserService) SearchUsers(ctx context.Context, query string) (users []models.User, err error) {
	ctx, done := instrument(ctx, "user", "search_users")
	defer done(&err)
	s.latency.sleep(250 * time.Millisecond)

	term := strings.ToLower(strings.TrimSpace(query))
	results := []models.User{}
	if term == "" {
		return results, nil
	}
	for _, u := range s.users.List(ctx) {
		if strings.Contains(strings.ToLower(u.Username), term) ||
			strings.Contains(strings.ToLower(u.DisplayName), term) {
			results = append(results, u)
			if len(results) == userSearchLimit {
				break
			}
		}
	}
	return results, nil
}

// Create appends a new user with the next identifier.
func (s *UserService) Create(ctx context.Context, in CreateUserInput) (user *models.User, err error) {
	ctx, done := instrument(ctx, "user", "create")
	defer done(&err)
	s.latency.sleep(400 * time.Millisecond)

	u := &models.User{
		Username:    in.Username,
		DisplayName: in.DisplayName,
		Avatar:      in.Avatar,
		Bio:         in.Bio,
		Verified:    in.Verified,
		Followers:   in.Followers,
		Following:   in.Following,
		PostsCount:  in.PostsCount,
	}
	s.users.Insert(ctx, u)
	return u, nil
}

// Update merges the supplied fields onto the existing record. The identifier
// is never changed.
func (s *UserService) Update(ctx context.Context, id int, in UpdateUserInput) (user *models.User, err error) {
	ctx, done := instrument(ctx, "user", "update")
	defer done(&err)
	s.latency.sleep(350 * time.Millisecond)

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Username != nil {
		u.Username = *in.Username
	}
	if in.DisplayName != nil {
		u.DisplayName = *in.DisplayName
	}
	if in.Avatar != nil {
		u.Avatar = *in.Avatar
	}
	if in.Bio != nil {
		u.Bio = *in.Bio
	}
	if in.Verified != nil {
		u.Verified = *in.Verified
	}
	if in.Followers != nil {
		u.Followers = *in.Followers
	}
	if in.Following != nil {
		u.Following = *in.Following
	}
	if in.PostsCount != nil {
		u.PostsCount = *in.PostsCount
	}
	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}
	return u, nil
}

// Delete removes and returns the user with the given identifier.
func (s *UserService) Delete(ctx context.Context, id int) (user *models.User, err error) {
	ctx, done := instrument(ctx, "user", "delete")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	return s.users.Delete(ctx, id)
}

// FollowUser increments the target's follower count and the current user's
// following count. The two records are read and written independently; there
// is no combined transaction.
func (s *UserService) FollowUser(ctx context.Context, targetID int) (err error) {
	ctx, done := instrument(ctx, "user", "follow_user")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	current, target, err := s.followPair(ctx, targetID)
	if err != nil {
		return err
	}

	target.Followers++
	current.Following++

	if err := s.users.Update(ctx, target); err != nil {
		return err
	}
	return s.users.Update(ctx, current)
}

// UnfollowUser decrements the target's follower count and the current user's
// following count, flooring both at zero.
func (s *UserService) UnfollowUser(ctx context.Context, targetID int) (err error) {
	ctx, done := instrument(ctx, "user", "unfollow_user")
	defer done(&err)
	s.latency.sleep(300 * time.Millisecond)

	current, target, err := s.followPair(ctx, targetID)
	if err != nil {
		return err
	}

	if target.Followers > 0 {
		target.Followers--
	}
	if current.Following > 0 {
		current.Following--
	}

	if err := s.users.Update(ctx, target); err != nil {
		return err
	}
	return s.users.Update(ctx, current)
}

func (s *UserService) followPair(ctx context.Context, targetID int) (current, target *models.User, err error) {
	current, err = s.GetCurrentUser(ctx)
	if err != nil {
		return nil, nil, err
	}
	if current == nil {
		return nil, nil, models.NewUnauthenticatedError("User not authenticated")
	}
	target, err = s.GetByID(ctx, targetID)
	if err != nil {
		return nil, nil, err
	}
	return current, target, nil
}
