package services

import (
	"context"
	"errors"

	"github.com/studenthub/apiserver/internal/store"
	"github.com/studenthub/apiserver/types"
)

// LibraryRepository defines persistence operations for study material.
type LibraryRepository interface {
	ListPapers(ctx context.Context) ([]types.Paper, error)
	GetPaperByFilename(ctx context.Context, filename string) (types.Paper, error)
	ListEbooks(ctx context.Context) ([]types.Ebook, error)
	StudentInfo(ctx context.Context) (map[string]any, error)
}

// LibraryService encapsulates paper and ebook use-cases.
type LibraryService struct {
	repo LibraryRepository
}

func NewLibraryService(repo LibraryRepository) *LibraryService {
	return &LibraryService{repo: repo}
}

func (s *LibraryService) ListPapers(ctx context.Context) ([]types.Paper, error) {
	papers, err := s.repo.ListPapers(ctx)
	if err != nil {
		return nil, err
	}
	if papers == nil {
		papers = []types.Paper{}
	}
	return papers, nil
}

func (s *LibraryService) GetPaperByFilename(ctx context.Context, filename string) (types.Paper, error) {
	return s.repo.GetPaperByFilename(ctx, filename)
}

// StudentInfo returns the campus info document, or an empty object
// when none has been stored.
func (s *LibraryService) StudentInfo(ctx context.Context) (map[string]any, error) {
	info, err := s.repo.StudentInfo(ctx)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return map[string]any{}, nil
		}
		return nil, err
	}
	return info, nil
}

func (s *LibraryService) ListEbooks(ctx context.Context) ([]types.Ebook, error) {
	ebooks, err := s.repo.ListEbooks(ctx)
	if err != nil {
		return nil, err
	}
	if ebooks == nil {
		ebooks = []types.Ebook{}
	}
	return ebooks, nil
}
