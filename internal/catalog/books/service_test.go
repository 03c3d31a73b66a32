package books

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	mysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biblio-backend/internal/platform/apierr"
)

func newService(t *testing.T) (*Service, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewService(conn), mock
}

func TestCreateBook(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Books (title, author, isbn, branchID) VALUES (?, ?, ?, ?)`)).
		WithArgs("Dune", "Frank Herbert", "9780441013593", int64(1)).
		WillReturnResult(sqlmock.NewResult(3, 1))

	out, err := svc.Create(context.Background(), CreateBookRequest{
		Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", BranchID: 1,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(3), out.BookID)
	assert.Equal(t, "Dune", out.Title)
}

func TestCreateBookValidation(t *testing.T) {
	svc, _ := newService(t)

	_, err := svc.Create(context.Background(), CreateBookRequest{Title: " ", Author: "a", ISBN: "i", BranchID: 1})
	var api *apierr.Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apierr.CodeInvalidArgument, api.Code)

	_, err = svc.Create(context.Background(), CreateBookRequest{Title: "t", Author: "a", ISBN: "i", BranchID: 0})
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apierr.CodeInvalidArgument, api.Code)
}

// A branchID pointing nowhere fails the foreign key and surfaces as a
// constraint violation, not a raw driver error.
func TestCreateBookMissingBranchIsConstraint(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Books`)).
		WithArgs("Dune", "Frank Herbert", "9780441013593", int64(99)).
		WillReturnError(&mysql.MySQLError{Number: 1452, Message: "a foreign key constraint fails"})

	_, err := svc.Create(context.Background(), CreateBookRequest{
		Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", BranchID: 99,
	})
	var api *apierr.Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apierr.CodeConstraint, api.Code)
}

func TestUpdateBookMissingIsNotFound(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Books SET`)).
		WithArgs("t", "a", "i", int64(1), int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := svc.Update(context.Background(), 42, UpdateBookRequest{Title: "t", Author: "a", ISBN: "i", BranchID: 1})
	var api *apierr.Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, apierr.CodeNotFound, api.Code)
}

func TestListAllPropagatesStorageFailure(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT bookID, title, author, isbn, branchID FROM Books ORDER BY bookID`)).
		WillReturnError(errors.New("server has gone away"))

	_, err := svc.ListAll(context.Background())
	assert.Error(t, err)
}

func TestRoundTrip(t *testing.T) {
	svc, mock := newService(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT bookID, title, author, isbn, branchID FROM Books WHERE bookID = ?`)).
		WithArgs(int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"bookID", "title", "author", "isbn", "branchID"}).
			AddRow(3, "Dune", "Frank Herbert", "9780441013593", 1))

	out, err := svc.Get(context.Background(), 3)
	require.NoError(t, err)
	assert.Equal(t, BookResponse{BookID: 3, Title: "Dune", Author: "Frank Herbert", ISBN: "9780441013593", BranchID: 1}, out)
}
