// Package search builds ranked substring queries over line text. A directive
// is a ready-to-apply query scope: a contains filter over one text column
// plus, when ranking is enabled, a tiered ordering that puts exact matches
// before prefix matches before any-position matches. Directives only shape
// the query; execution stays with the caller.
package search

import (
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/khalsafoundry/pothi/internal/gurmukhi"
)

type Directive func(*gorm.DB) *gorm.DB

// Text columns a directive can target.
const (
	ColumnGurmukhi     = "gurmukhi"
	ColumnFirstLetters = "first_letters"
)

// ByFirstLetters searches the phonetic first-letter key.
func ByFirstLetters(term string, rank bool) Directive {
	return directive(ColumnFirstLetters, term, rank)
}

// ByText searches the primary script rendering.
func ByText(term string, rank bool) Directive {
	return directive(ColumnGurmukhi, term, rank)
}

func directive(column, term string, rank bool) Directive {
	normalized := gurmukhi.Normalize(term)
	contains := "%" + normalized + "%"
	prefix := normalized + "%"

	return func(db *gorm.DB) *gorm.DB {
		db = db.Where(column+" LIKE ?", contains)
		if !rank {
			return db
		}
		// Ranking never narrows the result set, it only orders the
		// filtered rows. Ties within a class keep storage order.
		rankSQL := fmt.Sprintf(
			"CASE WHEN %s = ? THEN 0 WHEN %s LIKE ? THEN 1 WHEN %s LIKE ? THEN 2 ELSE 3 END",
			column, column, column,
		)
		return db.Order(clause.OrderBy{
			Expression: clause.Expr{SQL: rankSQL, Vars: []interface{}{normalized, prefix, contains}},
		})
	}
}
