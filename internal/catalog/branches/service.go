package branches

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

func (s *Service) Create(ctx context.Context, in CreateBranchRequest) (BranchResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return BranchResponse{}, apierr.Invalid("description is required")
	}
	id, err := s.store.Insert(ctx, in.Description)
	if err != nil {
		return BranchResponse{}, apierr.FromStorage(err, "branch not found")
	}
	return BranchResponse{BranchID: id, Description: in.Description}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (BranchResponse, error) {
	out, err := s.store.GetByID(ctx, id)
	if err != nil {
		return BranchResponse{}, apierr.FromStorage(err, "branch not found")
	}
	return *out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdateBranchRequest) (BranchResponse, error) {
	if strings.TrimSpace(in.Description) == "" {
		return BranchResponse{}, apierr.Invalid("description is required")
	}
	if err := s.store.Update(ctx, id, in.Description); err != nil {
		return BranchResponse{}, apierr.FromStorage(err, "branch not found")
	}
	return BranchResponse{BranchID: id, Description: in.Description}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return apierr.FromStorage(err, "branch not found")
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]BranchResponse, error) {
	out, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apierr.FromStorage(err, "branch not found")
	}
	return out, nil
}
