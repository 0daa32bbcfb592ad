// Package schema holds the table and column names used by the Postgres
// repositories, so queries never spell identifiers inline.
package schema

import "strings"

// Join renders a column list for SELECT and RETURNING clauses.
func Join(columns []string) string {
	return strings.Join(columns, ", ")
}
