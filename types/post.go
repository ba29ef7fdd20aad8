package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Post kinds. A post with an empty kind is a legacy document and is
// treated as a non-job post everywhere.
const (
	PostKindNote   = "note"
	PostKindJob    = "job"
	PostKindThread = "thread"
)

// Post represents a stored feed entry: a shared note, a job posting,
// or a discussion thread. Likes and comments are embedded in the post
// document and are not independently addressable.
type Post struct {
	// ID is the unique identifier of the post, assigned by the store.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Kind is one of "note", "job", or "thread". Legacy documents may
	// leave it unset.
	Kind string `json:"type,omitempty" bson:"type,omitempty"`

	// Title is the headline of the post.
	Title string `json:"title" bson:"title"`

	// Excerpt is a short summary shown in feed listings.
	Excerpt string `json:"excerpt" bson:"excerpt"`

	// Author is the display name of the post's author.
	Author string `json:"author" bson:"author"`

	// AuthorID optionally references the author's user identifier.
	AuthorID string `json:"authorId,omitempty" bson:"authorId,omitempty"`

	// Date is the creation timestamp, stamped by the server.
	Date time.Time `json:"date" bson:"date"`

	// Category groups posts for the category listing endpoint
	// (e.g., "Jobs", "Programming", "Study Tips").
	Category string `json:"category" bson:"category"`

	// ReadTime is the estimated reading time (e.g., "3 min read").
	ReadTime string `json:"read_time" bson:"read_time"`

	// Image is an optional cover image URL.
	Image string `json:"image,omitempty" bson:"image,omitempty"`

	// Tags are free-form labels attached to the post.
	Tags []string `json:"tags" bson:"tags,omitempty"`

	// Likes is the ordered sequence of likes. At most one like per
	// user id; enforced by the toggle-like update.
	Likes []Like `json:"likes" bson:"likes"`

	// Content is the optional full body of the post.
	Content string `json:"content,omitempty" bson:"content,omitempty"`

	// Comments is the append-only sequence of comments.
	Comments []Comment `json:"comments" bson:"comments,omitempty"`

	// DocumentURL optionally references an attached document
	// (e.g., lecture notes hosted in object storage).
	DocumentURL string `json:"document_url,omitempty" bson:"document_url,omitempty"`

	// JobLink is the external application link for job posts.
	JobLink string `json:"job_link,omitempty" bson:"job_link,omitempty"`

	// ReferralInfo is free-form referral guidance for job posts.
	ReferralInfo string `json:"referral_info,omitempty" bson:"referral_info,omitempty"`
}

// Like records that a user liked a post.
type Like struct {
	// UserID identifies the user who liked the post.
	UserID string `json:"user_id" bson:"user_id"`

	// UserName is the display name captured at like time.
	UserName string `json:"user_name" bson:"user_name"`

	// LikedAt is the timestamp of the like.
	LikedAt time.Time `json:"liked_at" bson:"liked_at"`
}

// Comment is a single comment embedded in a post. Comments are
// append-only; there is no edit or delete operation.
type Comment struct {
	// UserID identifies the comment's author.
	UserID string `json:"user_id" bson:"user_id"`

	// UserName is the author's display name captured at comment time.
	UserName string `json:"user_name" bson:"user_name"`

	// Text is the comment body.
	Text string `json:"text" bson:"text"`

	// CreatedAt is the timestamp of the comment.
	CreatedAt time.Time `json:"created_at" bson:"created_at"`
}

// PostView is the externally shaped representation of a Post. It adds
// the computed like count and guarantees tags, likes, and comments are
// present as empty arrays rather than absent.
type PostView struct {
	Post

	// LikeCount is the length of the post's likes sequence at read time.
	LikeCount int `json:"like_count"`
}

// View projects a stored Post into its public shape. Nil optional
// sequences become empty so clients never see null for them.
func (p Post) View() PostView {
	if p.Tags == nil {
		p.Tags = []string{}
	}
	if p.Likes == nil {
		p.Likes = []Like{}
	}
	if p.Comments == nil {
		p.Comments = []Comment{}
	}
	return PostView{Post: p, LikeCount: len(p.Likes)}
}
