package users

import (
	"fmt"
	"strings"
)

// buildSearchQuery folds the keyword list into one composite query: one
// sub-select per keyword, combined with UNION ALL so that a row matching
// several keywords appears once per match. The union is grouped by the
// public projection and ordered by occurrence count, so the duplicate
// occurrences act as relevance votes. Tie order after count(*) DESC is
// whatever the store yields and must not be relied upon.
//
// The caller guarantees at least one keyword.
func buildSearchQuery(keywords []string, limit, offset int) (string, []any) {
	var sb strings.Builder
	args := make([]any, 0, len(keywords)+2)

	sb.WriteString("SELECT result.name, result.icon_key, result.explanation, result.id FROM (")
	for i, keyword := range keywords {
		if i > 0 {
			sb.WriteString(" UNION ALL ")
		}
		args = append(args, keyword)
		fmt.Fprintf(&sb, "SELECT * FROM users WHERE name LIKE $%d", len(args))
	}
	sb.WriteString(") AS result")
	sb.WriteString(" GROUP BY result.name, result.icon_key, result.explanation, result.id")
	sb.WriteString(" ORDER BY count(*) DESC")

	args = append(args, limit)
	fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	args = append(args, offset)
	fmt.Fprintf(&sb, " OFFSET $%d", len(args))

	return sb.String(), args
}
