package services

import (
	"context"
	"sort"

	"github.com/studenthub/apiserver/internal/store"
	"github.com/studenthub/apiserver/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// mockPostRepo is an in-memory PostRepository mirroring the store's
// observable behavior: missing documents surface store.ErrNotFound, and
// TryAddLike appends only when the user has not liked the post yet.
type mockPostRepo struct {
	posts []types.Post
}

func newMockPostRepo() *mockPostRepo {
	return &mockPostRepo{}
}

// add inserts a post with a fresh id and returns its hex id.
func (m *mockPostRepo) add(post types.Post) string {
	post.ID = primitive.NewObjectID()
	m.posts = append(m.posts, post)
	return post.ID.Hex()
}

func (m *mockPostRepo) find(id string) (int, bool) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return 0, false
	}
	for i, p := range m.posts {
		if p.ID == oid {
			return i, true
		}
	}
	return 0, false
}

func (m *mockPostRepo) List(ctx context.Context) ([]types.Post, error) {
	out := make([]types.Post, len(m.posts))
	copy(out, m.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (m *mockPostRepo) ListByCategory(ctx context.Context, category string) ([]types.Post, error) {
	var out []types.Post
	for _, p := range m.posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *mockPostRepo) Get(ctx context.Context, id string) (types.Post, error) {
	i, ok := m.find(id)
	if !ok {
		return types.Post{}, store.ErrNotFound
	}
	return m.posts[i], nil
}

func (m *mockPostRepo) Create(ctx context.Context, post types.Post) (types.Post, error) {
	post.ID = primitive.NewObjectID()
	m.posts = append(m.posts, post)
	return post, nil
}

func (m *mockPostRepo) TryAddLike(ctx context.Context, id string, like types.Like) (bool, error) {
	i, ok := m.find(id)
	if !ok {
		return false, nil
	}
	for _, l := range m.posts[i].Likes {
		if l.UserID == like.UserID {
			return false, nil
		}
	}
	m.posts[i].Likes = append(m.posts[i].Likes, like)
	return true, nil
}

func (m *mockPostRepo) RemoveLike(ctx context.Context, id, userID string) (bool, error) {
	i, ok := m.find(id)
	if !ok {
		return false, store.ErrNotFound
	}
	kept := m.posts[i].Likes[:0]
	removed := false
	for _, l := range m.posts[i].Likes {
		if l.UserID == userID {
			removed = true
			continue
		}
		kept = append(kept, l)
	}
	m.posts[i].Likes = kept
	return removed, nil
}

func (m *mockPostRepo) AddComment(ctx context.Context, id string, comment types.Comment) error {
	i, ok := m.find(id)
	if !ok {
		return store.ErrNotFound
	}
	m.posts[i].Comments = append(m.posts[i].Comments, comment)
	return nil
}

func (m *mockPostRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.posts)), nil
}

func (m *mockPostRepo) InsertMany(ctx context.Context, posts []types.Post) (int, error) {
	for _, p := range posts {
		p.ID = primitive.NewObjectID()
		m.posts = append(m.posts, p)
	}
	return len(posts), nil
}

func (m *mockPostRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(m.posts))
	m.posts = nil
	return n, nil
}
