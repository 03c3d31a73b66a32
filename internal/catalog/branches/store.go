package branches

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, description string) (int64, error) {
	const q = `INSERT INTO Branches (branchDescription) VALUES (?)`
	res, err := s.db.ExecContext(ctx, q, description)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*BranchResponse, error) {
	const q = `SELECT branchID, branchDescription FROM Branches WHERE branchID = ?`
	var r BranchResponse
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&r.BranchID, &r.Description); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Update(ctx context.Context, id int64, description string) error {
	const q = `UPDATE Branches SET branchDescription = ? WHERE branchID = ?`
	res, err := s.db.ExecContext(ctx, q, description, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM Branches WHERE branchID = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]BranchResponse, error) {
	const q = `SELECT branchID, branchDescription FROM Branches ORDER BY branchID`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BranchResponse{}
	for rows.Next() {
		var r BranchResponse
		if err := rows.Scan(&r.BranchID, &r.Description); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
