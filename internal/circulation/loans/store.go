package loans

import (
	"context"
	"database/sql"

	"biblio-backend/internal/platform/db"
)

type Store struct{ db *sql.DB }

func NewStore(conn *sql.DB) *Store { return &Store{db: conn} }

// ===== reference checks =====

func exists(ctx context.Context, q db.DBTX, query string, id int64) (bool, error) {
	var one int
	err := q.QueryRowContext(ctx, query, id).Scan(&one)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (s *Store) PatronExists(ctx context.Context, q db.DBTX, id int64) (bool, error) {
	return exists(ctx, q, `SELECT 1 FROM Patrons WHERE patronID = ?`, id)
}

func (s *Store) BranchExists(ctx context.Context, q db.DBTX, id int64) (bool, error) {
	return exists(ctx, q, `SELECT 1 FROM Branches WHERE branchID = ?`, id)
}

func (s *Store) BookExists(ctx context.Context, q db.DBTX, id int64) (bool, error) {
	return exists(ctx, q, `SELECT 1 FROM Books WHERE bookID = ?`, id)
}

func (s *Store) LoanExists(ctx context.Context, q db.DBTX, id int64) (bool, error) {
	return exists(ctx, q, `SELECT 1 FROM LoanHeader WHERE loanID = ?`, id)
}

// ===== headers =====

func (s *Store) InsertHeader(ctx context.Context, q db.DBTX, h *LoanHeader) error {
	const stmt = `
	INSERT INTO LoanHeader (patronID, branchID, beginDate, expectedReturnDate, overdueFee)
	VALUES (?, ?, ?, ?, ?)`
	res, err := q.ExecContext(ctx, stmt, h.PatronID, h.BranchID, h.BeginDate, h.ExpectedReturnDate, h.OverdueFee)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	h.LoanID = id
	return nil
}

func (s *Store) GetHeaderByID(ctx context.Context, id int64) (*LoanHeader, error) {
	const q = `
	SELECT loanID, patronID, branchID, beginDate, expectedReturnDate, overdueFee
	FROM LoanHeader WHERE loanID = ?`
	var h LoanHeader
	err := s.db.QueryRowContext(ctx, q, id).Scan(
		&h.LoanID, &h.PatronID, &h.BranchID, &h.BeginDate, &h.ExpectedReturnDate, &h.OverdueFee,
	)
	if err != nil {
		return nil, err
	}
	return &h, nil
}

func (s *Store) UpdateHeader(ctx context.Context, h *LoanHeader) error {
	const q = `
	UPDATE LoanHeader
	SET patronID = ?, branchID = ?, beginDate = ?, expectedReturnDate = ?, overdueFee = ?
	WHERE loanID = ?`
	res, err := s.db.ExecContext(ctx, q, h.PatronID, h.BranchID, h.BeginDate, h.ExpectedReturnDate, h.OverdueFee, h.LoanID)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) ListHeaders(ctx context.Context) ([]LoanHeader, error) {
	const q = `
	SELECT loanID, patronID, branchID, beginDate, expectedReturnDate, overdueFee
	FROM LoanHeader ORDER BY loanID`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LoanHeader{}
	for rows.Next() {
		var h LoanHeader
		if err := rows.Scan(&h.LoanID, &h.PatronID, &h.BranchID, &h.BeginDate, &h.ExpectedReturnDate, &h.OverdueFee); err != nil {
			return nil, err
		}
		out = append(out, h)
	}
	return out, rows.Err()
}

// DeleteLoanCascade removes the detail rows first, then the header.
// Callers run it inside a transaction so a header is never deleted while
// its lines survive.
func (s *Store) DeleteLoanCascade(ctx context.Context, q db.DBTX, loanID int64) error {
	if _, err := q.ExecContext(ctx, `DELETE FROM LoanDetails WHERE loanID = ?`, loanID); err != nil {
		return err
	}
	res, err := q.ExecContext(ctx, `DELETE FROM LoanHeader WHERE loanID = ?`, loanID)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

// ===== details =====

func (s *Store) InsertDetail(ctx context.Context, q db.DBTX, d *LoanDetail) error {
	const stmt = `INSERT INTO LoanDetails (loanID, bookID, individualFee) VALUES (?, ?, ?)`
	res, err := q.ExecContext(ctx, stmt, d.LoanID, d.BookID, d.IndividualFee)
	if err != nil {
		return err
	}
	id, err := res.LastInsertId()
	if err != nil {
		return err
	}
	d.LoanDetailID = id
	return nil
}

func (s *Store) UpdateDetail(ctx context.Context, d *LoanDetail) error {
	const q = `UPDATE LoanDetails SET loanID = ?, bookID = ?, individualFee = ? WHERE loanDetailID = ?`
	res, err := s.db.ExecContext(ctx, q, d.LoanID, d.BookID, d.IndividualFee, d.LoanDetailID)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) DeleteDetail(ctx context.Context, id int64) error {
	const q = `DELETE FROM LoanDetails WHERE loanDetailID = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) ListDetails(ctx context.Context) ([]LoanDetail, error) {
	const q = `SELECT loanDetailID, loanID, bookID, individualFee FROM LoanDetails ORDER BY loanDetailID`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []LoanDetail{}
	for rows.Next() {
		var d LoanDetail
		if err := rows.Scan(&d.LoanDetailID, &d.LoanID, &d.BookID, &d.IndividualFee); err != nil {
			return nil, err
		}
		out = append(out, d)
	}
	return out, rows.Err()
}
