package handlers

import (
	"context"
	"sort"

	"github.com/studenthub/apiserver/internal/store"
	"github.com/studenthub/apiserver/types"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// memUserRepo backs the auth handler tests without a database.
type memUserRepo struct {
	users map[string]types.User
}

func newMemUserRepo() *memUserRepo {
	return &memUserRepo{users: make(map[string]types.User)}
}

func (m *memUserRepo) GetByID(ctx context.Context, id string) (types.User, error) {
	u, ok := m.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	return u, nil
}

func (m *memUserRepo) GetByEmail(ctx context.Context, email string) (types.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return types.User{}, store.ErrNotFound
}

func (m *memUserRepo) Create(ctx context.Context, user types.User) (types.User, error) {
	for _, u := range m.users {
		if u.Email == user.Email {
			return types.User{}, store.ErrConflict
		}
	}
	user.ID = primitive.NewObjectID()
	m.users[user.ID.Hex()] = user
	return user, nil
}

func (m *memUserRepo) UpdateFields(ctx context.Context, id string, fields map[string]any) (types.User, error) {
	u, ok := m.users[id]
	if !ok {
		return types.User{}, store.ErrNotFound
	}
	if name, ok := fields["name"].(string); ok {
		u.Name = name
	}
	if year, ok := fields["year"].(string); ok {
		u.Year = year
	}
	m.users[id] = u
	return u, nil
}

func (m *memUserRepo) SetPhoto(ctx context.Context, id, photo string) error {
	u, ok := m.users[id]
	if !ok {
		return store.ErrNotFound
	}
	u.Photo = photo
	m.users[id] = u
	return nil
}

// memPostRepo backs the blog handler tests without a database.
type memPostRepo struct {
	posts []types.Post
}

func newMemPostRepo() *memPostRepo {
	return &memPostRepo{}
}

func (m *memPostRepo) add(post types.Post) string {
	post.ID = primitive.NewObjectID()
	m.posts = append(m.posts, post)
	return post.ID.Hex()
}

func (m *memPostRepo) find(id string) (int, bool) {
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

func (m *memPostRepo) List(ctx context.Context) ([]types.Post, error) {
	out := make([]types.Post, len(m.posts))
	copy(out, m.posts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Date.After(out[j].Date)
	})
	return out, nil
}

func (m *memPostRepo) ListByCategory(ctx context.Context, category string) ([]types.Post, error) {
	var out []types.Post
	for _, p := range m.posts {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memPostRepo) Get(ctx context.Context, id string) (types.Post, error) {
	i, ok := m.find(id)
	if !ok {
		return types.Post{}, store.ErrNotFound
	}
	return m.posts[i], nil
}

func (m *memPostRepo) Create(ctx context.Context, post types.Post) (types.Post, error) {
	post.ID = primitive.NewObjectID()
	m.posts = append(m.posts, post)
	return post, nil
}

func (m *memPostRepo) TryAddLike(ctx context.Context, id string, like types.Like) (bool, error) {
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

func (m *memPostRepo) RemoveLike(ctx context.Context, id, userID string) (bool, error) {
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

func (m *memPostRepo) AddComment(ctx context.Context, id string, comment types.Comment) error {
	i, ok := m.find(id)
	if !ok {
		return store.ErrNotFound
	}
	m.posts[i].Comments = append(m.posts[i].Comments, comment)
	return nil
}

func (m *memPostRepo) Count(ctx context.Context) (int64, error) {
	return int64(len(m.posts)), nil
}

func (m *memPostRepo) InsertMany(ctx context.Context, posts []types.Post) (int, error) {
	for _, p := range posts {
		p.ID = primitive.NewObjectID()
		m.posts = append(m.posts, p)
	}
	return len(posts), nil
}

func (m *memPostRepo) DeleteAll(ctx context.Context) (int64, error) {
	n := int64(len(m.posts))
	m.posts = nil
	return n, nil
}
