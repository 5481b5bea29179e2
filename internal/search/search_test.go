package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/khalsafoundry/pothi/internal/entities"
)

func dryRunStatement(t *testing.T, directive Directive) *gorm.Statement {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	var lines []entities.Line
	tx := db.Session(&gorm.Session{DryRun: true}).
		Model(&entities.Line{}).
		Scopes(directive).
		Find(&lines)
	require.NoError(t, tx.Error)
	return tx.Statement
}

func TestByText_AppliesContainsFilter(t *testing.T) {
	stmt := dryRunStatement(t, ByText("ਸਤਿ", false))

	assert.Contains(t, stmt.SQL.String(), "gurmukhi LIKE ?")
	assert.NotContains(t, stmt.SQL.String(), "CASE WHEN")
	assert.Equal(t, []interface{}{"%ਸਤਿ%"}, stmt.Vars)
}

func TestByText_RankedOrderingTiers(t *testing.T) {
	stmt := dryRunStatement(t, ByText("ਸਤਿ", true))

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "gurmukhi LIKE ?")
	assert.Contains(t, sql, "CASE WHEN gurmukhi = ? THEN 0 WHEN gurmukhi LIKE ? THEN 1 WHEN gurmukhi LIKE ? THEN 2 ELSE 3 END")
	assert.Equal(t, []interface{}{"%ਸਤਿ%", "ਸਤਿ", "ਸਤਿ%", "%ਸਤਿ%"}, stmt.Vars)
}

func TestByFirstLetters_TargetsFirstLetterColumn(t *testing.T) {
	stmt := dryRunStatement(t, ByFirstLetters("ਹਸਨ", true))

	sql := stmt.SQL.String()
	assert.Contains(t, sql, "first_letters LIKE ?")
	assert.Contains(t, sql, "CASE WHEN first_letters = ? THEN 0")
}

func TestDirective_NormalizesKeyboardInput(t *testing.T) {
	stmt := dryRunStatement(t, ByText("sq", false))

	assert.Equal(t, []interface{}{"%ਸਤ%"}, stmt.Vars)
}
