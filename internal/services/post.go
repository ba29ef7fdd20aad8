package services

import (
	"context"
	"errors"
	"time"

	"github.com/studenthub/apiserver/internal/store"
	"github.com/studenthub/apiserver/types"
)

// ErrReadBack is returned when a freshly inserted post cannot be read
// back. The creator re-derives its response from the store rather than
// trusting its own write, so a miss here is an internal failure.
var ErrReadBack = errors.New("created post could not be read back")

// PostService applies mutations to single post documents and owns the
// bulk seeding operations.
type PostService struct {
	repo PostRepository
	now  func() time.Time
}

func NewPostService(repo PostRepository) *PostService {
	return &PostService{repo: repo, now: time.Now}
}

// Create stamps the draft with the current time and an empty likes
// sequence, persists it, and returns the shaped view of the document
// read back from the store.
func (s *PostService) Create(ctx context.Context, draft types.Post) (types.PostView, error) {
	draft.Date = s.now().UTC()
	draft.Likes = []types.Like{}
	if draft.Comments == nil {
		draft.Comments = []types.Comment{}
	}

	inserted, err := s.repo.Create(ctx, draft)
	if err != nil {
		return types.PostView{}, err
	}

	created, err := s.repo.Get(ctx, inserted.ID.Hex())
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return types.PostView{}, ErrReadBack
		}
		return types.PostView{}, err
	}
	return created.View(), nil
}

// ToggleLike likes the post on behalf of the user, or removes the
// user's existing like. Both arms are single atomic updates, so a
// concurrent double-toggle from one user cannot produce a duplicate
// like. Returns whether the post is liked by the user afterwards.
func (s *PostService) ToggleLike(ctx context.Context, postID, userID, userName string) (bool, error) {
	like := types.Like{
		UserID:   userID,
		UserName: userName,
		LikedAt:  s.now().UTC(),
	}
	added, err := s.repo.TryAddLike(ctx, postID, like)
	if err != nil {
		return false, err
	}
	if added {
		return true, nil
	}

	// Nothing appended: the user already liked the post, or it does not
	// exist. RemoveLike reports ErrNotFound for a missing post. A toggle
	// that loses a race with another removal still lands on "unliked".
	if _, err := s.repo.RemoveLike(ctx, postID, userID); err != nil {
		return false, err
	}
	return false, nil
}

// AddComment appends the comment to the post, stamping it with the
// current time.
func (s *PostService) AddComment(ctx context.Context, postID string, comment types.Comment) error {
	comment.CreatedAt = s.now().UTC()
	return s.repo.AddComment(ctx, postID, comment)
}

// Comments returns the post's comments, empty when it has none.
func (s *PostService) Comments(ctx context.Context, postID string) ([]types.Comment, error) {
	post, err := s.repo.Get(ctx, postID)
	if err != nil {
		return nil, err
	}
	if post.Comments == nil {
		return []types.Comment{}, nil
	}
	return post.Comments, nil
}

// SeedSamples inserts the starter posts, but only into an empty
// collection. Repeat calls are no-ops and report the existing count.
func (s *PostService) SeedSamples(ctx context.Context) (inserted int, existing int64, err error) {
	count, err := s.repo.Count(ctx)
	if err != nil {
		return 0, 0, err
	}
	if count > 0 {
		return 0, count, nil
	}

	n, err := s.repo.InsertMany(ctx, samplePosts(s.now().UTC()))
	if err != nil {
		return 0, 0, err
	}
	return n, 0, nil
}

// SeedMore inserts the expanded seed set, jobs and other posts
// pre-interleaved one-for-one. It carries no idempotence guard and will
// duplicate data when invoked repeatedly; known gap, kept as documented
// behavior.
func (s *PostService) SeedMore(ctx context.Context) (int, error) {
	return s.repo.InsertMany(ctx, expandedPosts(s.now().UTC()))
}

// Reset deletes all posts. Used by the seed CLI only.
func (s *PostService) Reset(ctx context.Context) (int64, error) {
	return s.repo.DeleteAll(ctx)
}
