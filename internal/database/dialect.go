// internal/database/dialect.go
package database

import (
	"errors"
	"strings"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// TextMatcher builds the case-insensitive substring predicate used by search.
// One implementation exists per dialect; NewTextMatcher picks it from the
// configured driver.
type TextMatcher interface {
	ContainsFold(column, query string) clause.Expression
}

func NewTextMatcher(driver string) TextMatcher {
	if driver == DriverPostgres {
		return postgresMatcher{}
	}
	return sqliteMatcher{}
}

type postgresMatcher struct{}

func (postgresMatcher) ContainsFold(column, query string) clause.Expression {
	return clause.Expr{
		SQL:  `? ILIKE ? ESCAPE '\'`,
		Vars: []interface{}{clause.Column{Name: column}, likePattern(query)},
	}
}

// sqliteMatcher folds both sides to lower case. SQLite's LOWER only folds
// ASCII, so the pattern gets the same treatment.
type sqliteMatcher struct{}

func (sqliteMatcher) ContainsFold(column, query string) clause.Expression {
	return clause.Expr{
		SQL:  `LOWER(?) LIKE ? ESCAPE '\'`,
		Vars: []interface{}{clause.Column{Name: column}, asciiLower(likePattern(query))},
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likePattern wraps query in wildcards, escaping LIKE metacharacters so the
// query matches literally.
func likePattern(query string) string {
	return "%" + likeEscaper.Replace(query) + "%"
}

func asciiLower(s string) string {
	return strings.Map(func(r rune) rune {
		if r >= 'A' && r <= 'Z' {
			return r + ('a' - 'A')
		}
		return r
	}, s)
}

// ForUpdate locks the selected rows until the surrounding transaction ends.
// SQLite serializes writers on its own and has no row locks.
func ForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == DriverPostgres {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// ForShare takes a shared row lock that conflicts with ForUpdate.
func ForShare(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == DriverPostgres {
		return tx.Clauses(clause.Locking{Strength: "SHARE"})
	}
	return tx
}

// IsUniqueViolation reports whether err comes from a unique constraint.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}

	// Raw pgx errors reach here from statements run outside gorm's translator
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation
}
