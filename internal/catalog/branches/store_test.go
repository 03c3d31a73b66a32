package branches

import (
	"context"
	"database/sql"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*Store, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })
	return NewStore(conn), mock
}

func TestInsertReturnsNewID(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Branches (branchDescription) VALUES (?)`)).
		WithArgs("Downtown").
		WillReturnResult(sqlmock.NewResult(1, 1))

	id, err := store.Insert(context.Background(), "Downtown")
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestListAllOrderedByID(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT branchID, branchDescription FROM Branches ORDER BY branchID`)).
		WillReturnRows(sqlmock.NewRows([]string{"branchID", "branchDescription"}).
			AddRow(1, "Downtown").
			AddRow(2, "Uptown"))

	out, err := store.ListAll(context.Background())
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, BranchResponse{BranchID: 1, Description: "Downtown"}, out[0])
	assert.Equal(t, BranchResponse{BranchID: 2, Description: "Uptown"}, out[1])
}

func TestListAllEmpty(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT branchID, branchDescription FROM Branches ORDER BY branchID`)).
		WillReturnRows(sqlmock.NewRows([]string{"branchID", "branchDescription"}))

	out, err := store.ListAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, out)
	assert.NotNil(t, out)
}

func TestUpdateZeroRowsIsNoRows(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Branches SET branchDescription = ? WHERE branchID = ?`)).
		WithArgs("Uptown", int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Update(context.Background(), 99, "Uptown")
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestDeleteZeroRowsIsNoRows(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM Branches WHERE branchID = ?`)).
		WithArgs(int64(99)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := store.Delete(context.Background(), 99)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestGetByID(t *testing.T) {
	store, mock := newStore(t)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT branchID, branchDescription FROM Branches WHERE branchID = ?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"branchID", "branchDescription"}).AddRow(1, "Downtown"))

	out, err := store.GetByID(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, &BranchResponse{BranchID: 1, Description: "Downtown"}, out)
}
