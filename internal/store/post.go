package store

import (
	"context"
	"errors"

	"github.com/studenthub/apiserver/internal/db"
	"github.com/studenthub/apiserver/types"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const (
	maxFeedDocs     = 200
	maxCategoryDocs = 100
)

// PostRepository handles persistence for blog posts. Likes and comments
// are embedded arrays mutated with single-document updates.
type PostRepository struct {
	coll *mongo.Collection
}

func NewPostRepository(database *mongo.Database) *PostRepository {
	return &PostRepository{coll: database.Collection(db.CollPosts)}
}

// List returns all posts ordered by creation timestamp descending.
func (r *PostRepository) List(ctx context.Context) ([]types.Post, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "date", Value: -1}}).
		SetLimit(maxFeedDocs)
	cursor, err := r.coll.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	var posts []types.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) ListByCategory(ctx context.Context, category string) ([]types.Post, error) {
	opts := options.Find().SetLimit(maxCategoryDocs)
	cursor, err := r.coll.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, err
	}
	var posts []types.Post
	if err := cursor.All(ctx, &posts); err != nil {
		return nil, err
	}
	return posts, nil
}

func (r *PostRepository) Get(ctx context.Context, id string) (types.Post, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return types.Post{}, ErrNotFound
	}

	var post types.Post
	err = r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&post)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return types.Post{}, ErrNotFound
		}
		return types.Post{}, err
	}
	return post, nil
}

func (r *PostRepository) Create(ctx context.Context, post types.Post) (types.Post, error) {
	res, err := r.coll.InsertOne(ctx, post)
	if err != nil {
		return types.Post{}, err
	}
	if oid, ok := res.InsertedID.(primitive.ObjectID); ok {
		post.ID = oid
	}
	return post, nil
}

// TryAddLike appends the like only if the user has not liked the post
// yet. The $ne guard makes the check-and-append a single atomic update,
// so two concurrent likes from the same user cannot both land. Returns
// false when nothing was appended: either the post is missing or the
// user had already liked it (RemoveLike distinguishes the two).
func (r *PostRepository) TryAddLike(ctx context.Context, id string, like types.Like) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}

	filter := bson.M{
		"_id":           oid,
		"likes.user_id": bson.M{"$ne": like.UserID},
	}
	res, err := r.coll.UpdateOne(ctx, filter, bson.M{"$push": bson.M{"likes": like}})
	if err != nil {
		return false, err
	}
	return res.ModifiedCount == 1, nil
}

// RemoveLike pulls the user's like from the post. The first return
// value reports whether a like was actually removed; ErrNotFound means
// the post itself does not exist.
func (r *PostRepository) RemoveLike(ctx context.Context, id, userID string) (bool, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return false, ErrNotFound
	}

	update := bson.M{"$pull": bson.M{"likes": bson.M{"user_id": userID}}}
	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return false, err
	}
	if res.MatchedCount == 0 {
		return false, ErrNotFound
	}
	return res.ModifiedCount == 1, nil
}

func (r *PostRepository) AddComment(ctx context.Context, id string, comment types.Comment) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}

	res, err := r.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$push": bson.M{"comments": comment}})
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *PostRepository) Count(ctx context.Context) (int64, error) {
	return r.coll.CountDocuments(ctx, bson.M{})
}

func (r *PostRepository) InsertMany(ctx context.Context, posts []types.Post) (int, error) {
	docs := make([]any, 0, len(posts))
	for _, post := range posts {
		docs = append(docs, post)
	}
	res, err := r.coll.InsertMany(ctx, docs)
	if err != nil {
		return 0, err
	}
	return len(res.InsertedIDs), nil
}

// DeleteAll removes every post. Maintenance only, reachable through the
// seed CLI, never over HTTP.
func (r *PostRepository) DeleteAll(ctx context.Context) (int64, error) {
	res, err := r.coll.DeleteMany(ctx, bson.M{})
	if err != nil {
		return 0, err
	}
	return res.DeletedCount, nil
}
