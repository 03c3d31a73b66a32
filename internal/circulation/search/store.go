package search

import (
	"context"
	"database/sql"
	"time"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

type headerRow struct {
	LoanID             int64
	PatronID           int64
	BranchID           int64
	BeginDate          time.Time
	ExpectedReturnDate time.Time
	OverdueFee         float64
}

// FindLoansByPhone resolves every patron stored with exactly this phone
// number and returns their loan headers. No format normalization: callers
// must supply the stored spelling.
func (s *Store) FindLoansByPhone(ctx context.Context, phone string) ([]headerRow, error) {
	const q = `
	SELECT loanID, patronID, branchID, beginDate, expectedReturnDate, overdueFee
	FROM LoanHeader
	WHERE patronID IN (SELECT patronID FROM Patrons WHERE phoneNumber = ?)
	ORDER BY loanID`

	rows, err := s.db.QueryContext(ctx, q, phone)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []headerRow{}
	for rows.Next() {
		var r headerRow
		if err := rows.Scan(&r.LoanID, &r.PatronID, &r.BranchID, &r.BeginDate, &r.ExpectedReturnDate, &r.OverdueFee); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
