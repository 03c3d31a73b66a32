package patrons

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, email string, dues float64, phone string) (int64, error) {
	const q = `INSERT INTO Patrons (email, dues, phoneNumber) VALUES (?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, email, dues, phone)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*PatronResponse, error) {
	const q = `SELECT patronID, email, dues, phoneNumber FROM Patrons WHERE patronID = ?`
	var r PatronResponse
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&r.PatronID, &r.Email, &r.Dues, &r.PhoneNumber); err != nil {
		return nil, err
	}
	return &r, nil
}

// Update overwrites every field, dues included. Dues is an operator-set
// balance, never derived from loan fees.
func (s *Store) Update(ctx context.Context, id int64, email string, dues float64, phone string) error {
	const q = `UPDATE Patrons SET email = ?, dues = ?, phoneNumber = ? WHERE patronID = ?`
	res, err := s.db.ExecContext(ctx, q, email, dues, phone, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM Patrons WHERE patronID = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]PatronResponse, error) {
	const q = `SELECT patronID, email, dues, phoneNumber FROM Patrons ORDER BY patronID`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []PatronResponse{}
	for rows.Next() {
		var r PatronResponse
		if err := rows.Scan(&r.PatronID, &r.Email, &r.Dues, &r.PhoneNumber); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
