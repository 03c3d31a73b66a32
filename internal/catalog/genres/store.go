package genres

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, name string) (int64, error) {
	const q = `INSERT INTO Genres (genreName) VALUES (?)`
	res, err := s.db.ExecContext(ctx, q, name)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*GenreResponse, error) {
	const q = `SELECT genreID, genreName FROM Genres WHERE genreID = ?`
	var r GenreResponse
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&r.GenreID, &r.Name); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Update(ctx context.Context, id int64, name string) error {
	const q = `UPDATE Genres SET genreName = ? WHERE genreID = ?`
	res, err := s.db.ExecContext(ctx, q, name, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM Genres WHERE genreID = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]GenreResponse, error) {
	const q = `SELECT genreID, genreName FROM Genres ORDER BY genreID`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []GenreResponse{}
	for rows.Next() {
		var r GenreResponse
		if err := rows.Scan(&r.GenreID, &r.Name); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
