package sqlite

import "database/sql"

// nullString maps "" to NULL so optional text columns (notably the unique
// contact email) don't collide on empty strings.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func stringValue(ns sql.NullString) string {
	if !ns.Valid {
		return ""
	}
	return ns.String
}
