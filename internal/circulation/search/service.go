package search

import (
	"context"
	"database/sql"

	"biblio-backend/internal/platform/apierr"
)

const dateLayout = "2006-01-02"

type LoanMatch struct {
	LoanID             int64   `json:"loan_id"`
	PatronID           int64   `json:"patron_id"`
	BranchID           int64   `json:"branch_id"`
	BeginDate          string  `json:"begin_date"`
	ExpectedReturnDate string  `json:"expected_return_date"`
	OverdueFee         float64 `json:"overdue_fee"`
}

type Service struct {
	store *Store
}

func NewService(db *sql.DB) *Service { return &Service{store: NewStore(db)} }

// FindLoansByPhone is exact-match. No patron with this number is an empty
// result, not an error.
func (s *Service) FindLoansByPhone(ctx context.Context, phone string) ([]LoanMatch, error) {
	if phone == "" {
		return nil, apierr.Invalid("phone_number is required")
	}
	rows, err := s.store.FindLoansByPhone(ctx, phone)
	if err != nil {
		return nil, apierr.FromStorage(err, "loan not found")
	}
	out := make([]LoanMatch, 0, len(rows))
	for _, r := range rows {
		out = append(out, LoanMatch{
			LoanID:             r.LoanID,
			PatronID:           r.PatronID,
			BranchID:           r.BranchID,
			BeginDate:          r.BeginDate.Format(dateLayout),
			ExpectedReturnDate: r.ExpectedReturnDate.Format(dateLayout),
			OverdueFee:         r.OverdueFee,
		})
	}
	return out, nil
}
