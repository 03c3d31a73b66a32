// Package apierr is the error model shared by every feature package:
// services wrap storage failures into coded errors, handlers translate the
// codes into HTTP statuses. Stores never wrap; they return database/sql and
// driver errors as-is.
package apierr

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"
	"net"

	mysql "github.com/go-sql-driver/mysql"
)

type Code string

const (
	CodeInvalidArgument Code = "INVALID_ARGUMENT"
	CodeNotFound        Code = "NOT_FOUND"
	CodeConstraint      Code = "CONSTRAINT_VIOLATION"
	CodeUnavailable     Code = "STORAGE_UNAVAILABLE"
	CodeInternal        Code = "INTERNAL"
)

type Error struct {
	Code    Code
	Message string
}

func (e *Error) Error() string { return fmt.Sprintf("%s: %s", e.Code, e.Message) }

func Invalid(msg string) *Error     { return &Error{Code: CodeInvalidArgument, Message: msg} }
func NotFound(msg string) *Error    { return &Error{Code: CodeNotFound, Message: msg} }
func Constraint(msg string) *Error  { return &Error{Code: CodeConstraint, Message: msg} }
func Unavailable(msg string) *Error { return &Error{Code: CodeUnavailable, Message: msg} }
func Internal(msg string) *Error    { return &Error{Code: CodeInternal, Message: msg} }

// MySQL errno values the services care about.
const (
	errnoDuplicateEntry  = 1062
	errnoRowIsReferenced = 1451
	errnoNoReferencedRow = 1452
)

// FromStorage maps a raw storage error onto the taxonomy. notFoundMsg is
// used when the error means the target row does not exist.
func FromStorage(err error, notFoundMsg string) error {
	if err == nil {
		return nil
	}
	var api *Error
	if errors.As(err, &api) {
		return api
	}
	if errors.Is(err, sql.ErrNoRows) {
		return NotFound(notFoundMsg)
	}
	var me *mysql.MySQLError
	if errors.As(err, &me) {
		switch me.Number {
		case errnoDuplicateEntry:
			return Constraint("duplicate key")
		case errnoRowIsReferenced:
			return Constraint("row is referenced by another table")
		case errnoNoReferencedRow:
			return Constraint("referenced row does not exist")
		}
	}
	var ne net.Error
	if errors.Is(err, driver.ErrBadConn) || errors.As(err, &ne) {
		return Unavailable(err.Error())
	}
	return err
}

func Status(err error) int {
	var api *Error
	if errors.As(err, &api) {
		switch api.Code {
		case CodeInvalidArgument:
			return 400
		case CodeNotFound:
			return 404
		case CodeConstraint:
			return 409
		case CodeUnavailable:
			return 503
		default:
			return 500
		}
	}
	return 500
}

type errBody struct {
	Code    Code   `json:"code"`
	Message string `json:"message"`
}

type Body struct {
	Error errBody `json:"error"`
}

func Payload(err error) Body {
	var api *Error
	if errors.As(err, &api) {
		return Body{Error: errBody{Code: api.Code, Message: api.Message}}
	}
	return Body{Error: errBody{Code: CodeInternal, Message: err.Error()}}
}

func PayloadFrom(code Code, msg string) Body {
	return Body{Error: errBody{Code: code, Message: msg}}
}
