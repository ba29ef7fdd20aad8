package services

import (
	"context"
	"errors"

	"github.com/studenthub/apiserver/internal/store"
	"github.com/studenthub/apiserver/types"
)

// ErrEmptyPatch is returned when a profile update contains no updatable
// fields after allow-list filtering.
var ErrEmptyPatch = errors.New("no valid fields to update")

// allowedProfileFields is the explicit allow-list for profile updates.
// Anything outside it is silently dropped, never written.
var allowedProfileFields = map[string]struct{}{
	"name":             {},
	"phone":            {},
	"dateOfBirth":      {},
	"gender":           {},
	"bloodGroup":       {},
	"address":          {},
	"emergencyContact": {},
	"hobbies":          {},
	"skills":           {},
	"cgpa":             {},
	"email":            {},
	"rollNumber":       {},
	"department":       {},
	"year":             {},
	"semester":         {},
	"photo":            {},
}

// UserRepository defines persistence operations for users.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (types.User, error)
	GetByEmail(ctx context.Context, email string) (types.User, error)
	Create(ctx context.Context, user types.User) (types.User, error)
	UpdateFields(ctx context.Context, id string, fields map[string]any) (types.User, error)
	SetPhoto(ctx context.Context, id, photo string) error
}

// UserService encapsulates account use-cases.
type UserService struct {
	repo UserRepository
}

func NewUserService(repo UserRepository) *UserService {
	return &UserService{repo: repo}
}

// Register creates the account. A prior read reports an existing email
// as a conflict; the unique index on users.email backstops the gap
// between that read and the insert.
func (s *UserService) Register(ctx context.Context, user types.User) (types.User, error) {
	_, err := s.repo.GetByEmail(ctx, user.Email)
	if err == nil {
		return types.User{}, store.ErrConflict
	}
	if !errors.Is(err, store.ErrNotFound) {
		return types.User{}, err
	}
	return s.repo.Create(ctx, user)
}

func (s *UserService) GetByID(ctx context.Context, id string) (types.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) GetByEmail(ctx context.Context, email string) (types.User, error) {
	return s.repo.GetByEmail(ctx, email)
}

// UpdateProfile applies the patch after dropping every field not on the
// allow-list. A patch with nothing left is rejected with ErrEmptyPatch
// and touches nothing.
func (s *UserService) UpdateProfile(ctx context.Context, id string, patch map[string]any) (types.User, error) {
	fields := make(map[string]any, len(patch))
	for key, value := range patch {
		if _, ok := allowedProfileFields[key]; ok {
			fields[key] = value
		}
	}
	if len(fields) == 0 {
		return types.User{}, ErrEmptyPatch
	}
	return s.repo.UpdateFields(ctx, id, fields)
}

// SetPhoto records the uploaded profile photo reference.
func (s *UserService) SetPhoto(ctx context.Context, id, photo string) error {
	return s.repo.SetPhoto(ctx, id, photo)
}
