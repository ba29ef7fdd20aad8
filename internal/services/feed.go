package services

import (
	"context"

	"github.com/studenthub/apiserver/types"
)

// PostRepository defines persistence operations for blog posts.
type PostRepository interface {
	List(ctx context.Context) ([]types.Post, error)
	ListByCategory(ctx context.Context, category string) ([]types.Post, error)
	Get(ctx context.Context, id string) (types.Post, error)
	Create(ctx context.Context, post types.Post) (types.Post, error)
	TryAddLike(ctx context.Context, id string, like types.Like) (bool, error)
	RemoveLike(ctx context.Context, id, userID string) (bool, error)
	AddComment(ctx context.Context, id string, comment types.Comment) error
	Count(ctx context.Context) (int64, error)
	InsertMany(ctx context.Context, posts []types.Post) (int, error)
	DeleteAll(ctx context.Context) (int64, error)
}

// FeedService assembles the client-facing post feed. Feed assembly is a
// pure transformation over a fetched snapshot; it never mutates storage.
type FeedService struct {
	repo PostRepository
}

func NewFeedService(repo PostRepository) *FeedService {
	return &FeedService{repo: repo}
}

// List returns all posts shaped for clients, with job and non-job posts
// interleaved one-for-one.
func (s *FeedService) List(ctx context.Context) ([]types.PostView, error) {
	posts, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return shapeViews(interleave(posts)), nil
}

// Get returns a single shaped post.
func (s *FeedService) Get(ctx context.Context, id string) (types.PostView, error) {
	post, err := s.repo.Get(ctx, id)
	if err != nil {
		return types.PostView{}, err
	}
	return post.View(), nil
}

// ListByCategory returns shaped posts in the given category, in fetch
// order. No interleaving is applied.
func (s *FeedService) ListByCategory(ctx context.Context, category string) ([]types.PostView, error) {
	posts, err := s.repo.ListByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return shapeViews(posts), nil
}

// interleave merges job posts and all other posts round-robin, starting
// with a job post and preserving each partition's relative order. Once
// one partition runs out the remainder of the other follows unchanged,
// so the output always has the same length as the input.
func interleave(posts []types.Post) []types.Post {
	var jobPosts, otherPosts []types.Post
	for _, post := range posts {
		if post.Kind == types.PostKindJob {
			jobPosts = append(jobPosts, post)
		} else {
			otherPosts = append(otherPosts, post)
		}
	}

	merged := make([]types.Post, 0, len(posts))
	i, j := 0, 0
	for i < len(jobPosts) || j < len(otherPosts) {
		if i < len(jobPosts) {
			merged = append(merged, jobPosts[i])
			i++
		}
		if j < len(otherPosts) {
			merged = append(merged, otherPosts[j])
			j++
		}
	}
	return merged
}

func shapeViews(posts []types.Post) []types.PostView {
	views := make([]types.PostView, 0, len(posts))
	for _, post := range posts {
		views = append(views, post.View())
	}
	return views
}
