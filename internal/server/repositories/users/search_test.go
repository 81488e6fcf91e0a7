package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildSearchQuery_SingleKeyword(t *testing.T) {
	query, args := buildSearchQuery([]string{"ann"}, 50, 0)

	assert.Equal(t,
		"SELECT result.name, result.icon_key, result.explanation, result.id FROM ("+
			"SELECT * FROM users WHERE name LIKE $1"+
			") AS result GROUP BY result.name, result.icon_key, result.explanation, result.id"+
			" ORDER BY count(*) DESC LIMIT $2 OFFSET $3",
		query)
	assert.Equal(t, []any{"ann", 50, 0}, args)
}

func TestBuildSearchQuery_MultipleKeywords(t *testing.T) {
	query, args := buildSearchQuery([]string{"al", "bo", "ci"}, 10, 20)

	assert.Contains(t, query, "SELECT * FROM users WHERE name LIKE $1 UNION ALL "+
		"SELECT * FROM users WHERE name LIKE $2 UNION ALL "+
		"SELECT * FROM users WHERE name LIKE $3")
	assert.Contains(t, query, "LIMIT $4 OFFSET $5")
	assert.Equal(t, []any{"al", "bo", "ci", 10, 20}, args)
}

func TestBuildSearchQuery_DuplicateKeywordKeepsBothBranches(t *testing.T) {
	// a duplicated keyword doubles that keyword's votes
	query, args := buildSearchQuery([]string{"al", "al"}, 50, 0)

	assert.Contains(t, query, "name LIKE $1 UNION ALL SELECT * FROM users WHERE name LIKE $2")
	assert.Equal(t, []any{"al", "al", 50, 0}, args)
}
