package pg

import (
	"fmt"
	"strings"
)

// Entity names are already restricted to alphanumerics and underscores
// by the WQL grammar; the only hazard left is SQL keywords.
var reserved = map[string]struct{}{
	"user": {}, "select": {}, "table": {}, "insert": {}, "update": {}, "delete": {},
	"where": {}, "join": {}, "group": {}, "order": {}, "limit": {}, "offset": {},
	"primary": {}, "foreign": {}, "key": {}, "constraint": {}, "default": {},
	"from": {}, "into": {}, "values": {}, "unique": {}, "index": {}, "create": {},
	"drop": {}, "alter": {}, "schema": {}, "grant": {}, "revoke": {},
}

func isReserved(s string) bool { _, ok := reserved[strings.ToLower(s)]; return ok }

func safeTable(entity string) string {
	t := strings.ToLower(entity)
	if isReserved(t) {
		t = "e_" + t
	}
	return t
}

// tableIdent returns the schema-qualified, quoted table identifier for
// an entity.
func tableIdent(entity string) string {
	return fmt.Sprintf(`wooridb.%q`, safeTable(entity))
}

// entityDDL is idempotent; every statement carries IF NOT EXISTS.
func entityDDL(entity string) []string {
	return []string{
		`CREATE SCHEMA IF NOT EXISTS wooridb`,
		fmt.Sprintf(
			`CREATE TABLE IF NOT EXISTS %s (
				id text PRIMARY KEY,
				created_at timestamptz NOT NULL,
				payload jsonb NOT NULL
			)`,
			tableIdent(entity),
		),
	}
}
