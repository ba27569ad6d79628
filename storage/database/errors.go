package database

import (
	"strings"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
	"github.com/pkg/errors"
)

const (
	pqUniqueViolation = pq.ErrorCode("23505")
	pqUndefinedTable  = pq.ErrorCode("42P01")
)

// IsUniqueViolation reports whether err comes from a unique or primary key constraint.
func IsUniqueViolation(err error) bool {
	switch e := errors.Cause(err).(type) {
	case *pq.Error:
		return e.Code == pqUniqueViolation
	case sqlite3.Error:
		return e.ExtendedCode == sqlite3.ErrConstraintUnique || e.ExtendedCode == sqlite3.ErrConstraintPrimaryKey
	}
	return false
}

// IsUndefinedTable reports whether err comes from a query on a table that does not exist.
func IsUndefinedTable(err error) bool {
	switch e := errors.Cause(err).(type) {
	case *pq.Error:
		return e.Code == pqUndefinedTable
	case sqlite3.Error:
		return strings.Contains(e.Error(), "no such table")
	}
	return false
}
