package patrons

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

func validate(email string, dues float64, phone string) error {
	if strings.TrimSpace(email) == "" || strings.TrimSpace(phone) == "" {
		return apierr.Invalid("email and phone_number are required")
	}
	if dues < 0 {
		return apierr.Invalid("dues must be >= 0")
	}
	return nil
}

func (s *Service) Create(ctx context.Context, in CreatePatronRequest) (PatronResponse, error) {
	if err := validate(in.Email, in.Dues, in.PhoneNumber); err != nil {
		return PatronResponse{}, err
	}
	id, err := s.store.Insert(ctx, in.Email, in.Dues, in.PhoneNumber)
	if err != nil {
		return PatronResponse{}, apierr.FromStorage(err, "patron not found")
	}
	return PatronResponse{PatronID: id, Email: in.Email, Dues: in.Dues, PhoneNumber: in.PhoneNumber}, nil
}

func (s *Service) Get(ctx context.Context, id int64) (PatronResponse, error) {
	out, err := s.store.GetByID(ctx, id)
	if err != nil {
		return PatronResponse{}, apierr.FromStorage(err, "patron not found")
	}
	return *out, nil
}

func (s *Service) Update(ctx context.Context, id int64, in UpdatePatronRequest) (PatronResponse, error) {
	if err := validate(in.Email, in.Dues, in.PhoneNumber); err != nil {
		return PatronResponse{}, err
	}
	if err := s.store.Update(ctx, id, in.Email, in.Dues, in.PhoneNumber); err != nil {
		return PatronResponse{}, apierr.FromStorage(err, "patron not found")
	}
	return PatronResponse{PatronID: id, Email: in.Email, Dues: in.Dues, PhoneNumber: in.PhoneNumber}, nil
}

func (s *Service) Delete(ctx context.Context, id int64) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return apierr.FromStorage(err, "patron not found")
	}
	return nil
}

func (s *Service) ListAll(ctx context.Context) ([]PatronResponse, error) {
	out, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, apierr.FromStorage(err, "patron not found")
	}
	return out, nil
}
