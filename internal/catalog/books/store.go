package books

import (
	"context"
	"database/sql"
)

type Store struct{ db *sql.DB }

func NewStore(db *sql.DB) *Store { return &Store{db: db} }

func (s *Store) Insert(ctx context.Context, in CreateBookRequest) (int64, error) {
	const q = `INSERT INTO Books (title, author, isbn, branchID) VALUES (?, ?, ?, ?)`
	res, err := s.db.ExecContext(ctx, q, in.Title, in.Author, in.ISBN, in.BranchID)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (s *Store) GetByID(ctx context.Context, id int64) (*BookResponse, error) {
	const q = `SELECT bookID, title, author, isbn, branchID FROM Books WHERE bookID = ?`
	var r BookResponse
	if err := s.db.QueryRowContext(ctx, q, id).Scan(&r.BookID, &r.Title, &r.Author, &r.ISBN, &r.BranchID); err != nil {
		return nil, err
	}
	return &r, nil
}

func (s *Store) Update(ctx context.Context, id int64, in UpdateBookRequest) error {
	const q = `UPDATE Books SET title = ?, author = ?, isbn = ?, branchID = ? WHERE bookID = ?`
	res, err := s.db.ExecContext(ctx, q, in.Title, in.Author, in.ISBN, in.BranchID, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id int64) error {
	const q = `DELETE FROM Books WHERE bookID = ?`
	res, err := s.db.ExecContext(ctx, q, id)
	if err != nil {
		return err
	}
	if aff, _ := res.RowsAffected(); aff == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (s *Store) ListAll(ctx context.Context) ([]BookResponse, error) {
	const q = `SELECT bookID, title, author, isbn, branchID FROM Books ORDER BY bookID`
	rows, err := s.db.QueryContext(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []BookResponse{}
	for rows.Next() {
		var r BookResponse
		if err := rows.Scan(&r.BookID, &r.Title, &r.Author, &r.ISBN, &r.BranchID); err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, rows.Err()
}
