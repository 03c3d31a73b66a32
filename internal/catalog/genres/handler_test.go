package genres

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRouter(t *testing.T) (*gin.Engine, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { conn.Close() })

	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterRoutes(r.Group("/"), NewService(conn))
	return r, mock
}

func do(r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

// The full create/get/update/delete lifecycle of one genre.
func TestGenreLifecycle(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(`INSERT INTO Genres (genreName) VALUES (?)`)).
		WithArgs("Mystery").
		WillReturnResult(sqlmock.NewResult(1, 1))
	w := do(r, http.MethodPost, "/genres", `{"name":"Mystery"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "/genres/1", w.Header().Get("Location"))

	var created GenreResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, GenreResponse{GenreID: 1, Name: "Mystery"}, created)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT genreID, genreName FROM Genres WHERE genreID = ?`)).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows([]string{"genreID", "genreName"}).AddRow(1, "Mystery"))
	w = do(r, http.MethodGet, "/genres/1", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"genre_id":1,"name":"Mystery"}`, w.Body.String())

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Genres SET genreName = ? WHERE genreID = ?`)).
		WithArgs("Thriller", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	w = do(r, http.MethodPut, "/genres/1", `{"name":"Thriller"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"genre_id":1,"name":"Thriller"}`, w.Body.String())

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM Genres WHERE genreID = ?`)).
		WithArgs(int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	w = do(r, http.MethodDelete, "/genres/1", "")
	require.Equal(t, http.StatusNoContent, w.Code)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT genreID, genreName FROM Genres ORDER BY genreID`)).
		WillReturnRows(sqlmock.NewRows([]string{"genreID", "genreName"}))
	w = do(r, http.MethodGet, "/genres", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	require.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateMissingGenreIs404(t *testing.T) {
	r, mock := newRouter(t)

	mock.ExpectExec(regexp.QuoteMeta(`UPDATE Genres SET genreName = ? WHERE genreID = ?`)).
		WithArgs("Thriller", int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	w := do(r, http.MethodPut, "/genres/42", `{"name":"Thriller"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "NOT_FOUND")
}

func TestCreateRejectsBlankName(t *testing.T) {
	r, _ := newRouter(t)

	w := do(r, http.MethodPost, "/genres", `{"name":"   "}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ARGUMENT")
}
