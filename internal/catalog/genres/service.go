package genres

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

func (s *Service) Create(ctx context.Context, in CreateGenreRequest) (GenreResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return GenreResponse{}, apierr.Invalid("name is required")
	}
	id, err := s.store.Insert(ctx, in.Name)
	if err != nil {
		return GenreResponse{}, apierr.FromStorage(err, "genre not found")
	}
	return GenreResponse{GenreID: id, Name: in.Name}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (GenreResponse, error) {
	out, err := s.store.GetByID(ctx, id)
	if err != nil {
		return GenreResponse{}, apierr.FromStorage(err, "genre not found")
	}
	return *out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateGenreRequest) (GenreResponse, error) {
	if strings.TrimSpace(in.Name) == "" {
		return GenreResponse{}, apierr.Invalid("name is required")
	}
	if err := s.store.Update(ctx, id, in.Name); err != nil {
		return GenreResponse{}, apierr.FromStorage(err, "genre not found")
	}
	return GenreResponse{GenreID: id, Name: in.Name}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return apierr.FromStorage(err, "genre not found")
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]GenreResponse, error) {
	out, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apierr.FromStorage(err, "genre not found")
	}
	return out, nil
}
