package types

import "go.mongodb.org/mongo-driver/bson/primitive"

// User represents a registered student account.
// It contains credentials, profile data, and academic metadata.
type User struct {
	// ID is the unique identifier of the user, assigned by the store.
	// It marshals to its hex form in JSON responses.
	ID primitive.ObjectID `json:"_id" bson:"_id,omitempty"`

	// Name is the user's display or full name.
	Name string `json:"name" bson:"name"`

	// Email is the user's email address. It is unique across accounts;
	// uniqueness is enforced by a unique index on the users collection.
	Email string `json:"email" bson:"email"`

	// PasswordHash stores the bcrypt hash of the user's password.
	// This field is never exposed in API responses.
	PasswordHash string `json:"-" bson:"password"`

	// Phone is the user's contact number.
	Phone string `json:"phone,omitempty" bson:"phone,omitempty"`

	// DateOfBirth is the user's date of birth in YYYY-MM-DD form.
	DateOfBirth string `json:"dateOfBirth,omitempty" bson:"dateOfBirth,omitempty"`

	// RollNumber is the institutional roll number.
	RollNumber string `json:"rollNumber,omitempty" bson:"rollNumber,omitempty"`

	// Department is the academic department (e.g., "CSE").
	Department string `json:"department,omitempty" bson:"department,omitempty"`

	// Year is the current year of study.
	Year string `json:"year,omitempty" bson:"year,omitempty"`

	// Semester is the current semester.
	Semester string `json:"semester,omitempty" bson:"semester,omitempty"`

	// CGPA is the cumulative grade point average.
	CGPA float64 `json:"cgpa,omitempty" bson:"cgpa,omitempty"`

	// Gender is the self-reported gender.
	Gender string `json:"gender,omitempty" bson:"gender,omitempty"`

	// BloodGroup is the user's blood group.
	BloodGroup string `json:"bloodGroup,omitempty" bson:"bloodGroup,omitempty"`

	// Address is the user's postal address.
	Address string `json:"address,omitempty" bson:"address,omitempty"`

	// EmergencyContact is a contact to reach in an emergency.
	EmergencyContact string `json:"emergencyContact,omitempty" bson:"emergencyContact,omitempty"`

	// Hobbies is a free-form description of the user's hobbies.
	Hobbies string `json:"hobbies,omitempty" bson:"hobbies,omitempty"`

	// Skills is a free-form description of the user's skills.
	Skills string `json:"skills,omitempty" bson:"skills,omitempty"`

	// ProfilePicture is an optional picture URL supplied at registration.
	ProfilePicture string `json:"profilePicture,omitempty" bson:"profilePicture,omitempty"`

	// Photo references the profile photo uploaded through the media
	// relay (an object storage URL). Empty until a photo is uploaded.
	Photo string `json:"photo,omitempty" bson:"photo,omitempty"`
}
