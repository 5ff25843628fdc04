package repo

import (
	"errors"

	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// constraintKind identifies which class of constraint a failed statement
// violated, taken from the SQLite extended result code rather than the error
// message text. Each repository method maps the kinds it can trigger onto
// domain errors, so classification stays independent of the engine's message
// format.
type constraintKind int

const (
	constraintNone constraintKind = iota
	constraintPrimaryKey
	constraintUnique
	constraintForeignKey
)

func classifyConstraint(err error) constraintKind {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return constraintNone
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return constraintPrimaryKey
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE:
		return constraintUnique
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return constraintForeignKey
	}
	return constraintNone
}
