package apierr

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"testing"

	mysql "github.com/go-sql-driver/mysql"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromStorageNil(t *testing.T) {
	assert.NoError(t, FromStorage(nil, "x"))
}

func TestFromStorageNoRows(t *testing.T) {
	err := FromStorage(sql.ErrNoRows, "branch not found")

	var api *Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeNotFound, api.Code)
	assert.Equal(t, "branch not found", api.Message)
}

func TestFromStorageMySQLErrnos(t *testing.T) {
	for _, tc := range []struct {
		errno uint16
	}{
		{1062}, {1451}, {1452},
	} {
		err := FromStorage(&mysql.MySQLError{Number: tc.errno}, "x")
		var api *Error
		require.ErrorAs(t, err, &api, "errno %d", tc.errno)
		assert.Equal(t, CodeConstraint, api.Code, "errno %d", tc.errno)
	}
}

func TestFromStorageBadConn(t *testing.T) {
	err := FromStorage(driver.ErrBadConn, "x")

	var api *Error
	require.ErrorAs(t, err, &api)
	assert.Equal(t, CodeUnavailable, api.Code)
}

func TestFromStoragePassesThroughAPIError(t *testing.T) {
	orig := Constraint("patron does not exist")
	assert.Same(t, orig, FromStorage(orig, "x"))
}

func TestFromStoragePassesThroughUnknown(t *testing.T) {
	unknown := errors.New("boom")
	assert.Equal(t, unknown, FromStorage(unknown, "x"))
}

func TestStatus(t *testing.T) {
	assert.Equal(t, 400, Status(Invalid("x")))
	assert.Equal(t, 404, Status(NotFound("x")))
	assert.Equal(t, 409, Status(Constraint("x")))
	assert.Equal(t, 503, Status(Unavailable("x")))
	assert.Equal(t, 500, Status(Internal("x")))
	assert.Equal(t, 500, Status(errors.New("boom")))
}

func TestPayload(t *testing.T) {
	b := Payload(NotFound("loan not found"))
	assert.Equal(t, CodeNotFound, b.Error.Code)
	assert.Equal(t, "loan not found", b.Error.Message)

	b = Payload(errors.New("boom"))
	assert.Equal(t, CodeInternal, b.Error.Code)
	assert.Equal(t, "boom", b.Error.Message)
}
