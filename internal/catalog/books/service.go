package books

import (
	"context"
	"database/sql"
	"strings"

	"biblio-backend/internal/platform/apierr"
)

type Service struct {
	store *Store
}

func NewService(db *sql.DB) *Service { return &Service{store: NewStore(db)} }

func validate(title, author, isbn string, branchID int64) error {
	if strings.TrimSpace(title) == "" || strings.TrimSpace(author) == "" || strings.TrimSpace(isbn) == "" {
		return apierr.Invalid("title, author, isbn are required")
	}
	if branchID <= 0 {
		return apierr.Invalid("branch_id must be > 0")
	}
	return nil
}

// Create does not pre-check the branch; a missing branch surfaces as a
// foreign-key failure mapped to CONSTRAINT_VIOLATION.
func (s *Service) Create(ctx context.Context, in CreateBookRequest) (BookResponse, error) {
	if err := validate(in.Title, in.Author, in.ISBN, in.BranchID); err != nil {
		return BookResponse{}, err
	}
	id, err := s.store.Insert(ctx, in)
	if err != nil {
		return BookResponse{}, apierr.FromStorage(err, "book not found")
	}
	return BookResponse{BookID: id, Title: in.Title, Author: in.Author, ISBN: in.ISBN, BranchID: in.BranchID}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (BookResponse, error) {
	out, err := s.store.GetByID(ctx, id)
	if err != nil {
		return BookResponse{}, apierr.FromStorage(err, "book not found")
	}
	return *out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateBookRequest) (BookResponse, error) {
	if err := validate(in.Title, in.Author, in.ISBN, in.BranchID); err != nil {
		return BookResponse{}, err
	}
	if err := s.store.Update(ctx, id, in); err != nil {
		return BookResponse{}, apierr.FromStorage(err, "book not found")
	}
	return BookResponse{BookID: id, Title: in.Title, Author: in.Author, ISBN: in.ISBN, BranchID: in.BranchID}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return apierr.FromStorage(err, "book not found")
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]BookResponse, error) {
	out, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apierr.FromStorage(err, "book not found")
	}
	return out, nil
}
