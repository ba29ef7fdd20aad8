package types

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Paper is a question paper shared through the hub. The file itself
// lives in object storage; only metadata is kept in the papers
// collection.
type Paper struct {
	// ID is the unique identifier of the paper record.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Title is the human-readable title of the paper.
	Title string `json:"title" bson:"title"`

	// Subject is the course or subject the paper belongs to.
	Subject string `json:"subject" bson:"subject"`

	// Year is the examination year.
	Year int `json:"year,omitempty" bson:"year,omitempty"`

	// Filename is the stable name used in download URLs
	// (GET /api/papers/{filename}).
	Filename string `json:"filename" bson:"filename"`

	// FileURL is the externally reachable URL of the stored file.
	FileURL string `json:"fileUrl" bson:"fileUrl"`

	// UploadedBy optionally references the uploading user.
	UploadedBy string `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`

	// CreatedAt is the timestamp the record was created.
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}

// Ebook is a shared textbook reference, mirrors the papers model.
type Ebook struct {
	// ID is the unique identifier of the ebook record.
	ID primitive.ObjectID `json:"id" bson:"_id,omitempty"`

	// Title is the book title.
	Title string `json:"title" bson:"title"`

	// Author is the book author.
	Author string `json:"author,omitempty" bson:"author,omitempty"`

	// Subject is the course or subject the book belongs to.
	Subject string `json:"subject" bson:"subject"`

	// FileURL is the externally reachable URL of the stored file.
	FileURL string `json:"fileUrl" bson:"fileUrl"`

	// UploadedBy optionally references the uploading user.
	UploadedBy string `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`

	// CreatedAt is the timestamp the record was created.
	CreatedAt time.Time `json:"created_at,omitempty" bson:"created_at,omitempty"`
}
