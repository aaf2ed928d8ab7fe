package db

import (
	"regexp"
	"strings"
)

var kvPairRegex = regexp.MustCompile(`(?i)\b(host|user|password|dbname|port|sslmode)=`)

// Dialect names resolved from a DSN.
const (
	DialectSQLite   = "sqlite"
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
)

// NormalizeDSN trims quotes/whitespace and, for postgres key=value form,
// cleans it up and defaults sslmode to disable. URL-style and sqlite/mysql
// DSNs pass through unchanged.
func NormalizeDSN(raw string) string {
	s := strings.TrimSpace(raw)
	s = strings.Trim(s, "\"'")
	if s == "" {
		return s
	}
	if DetectDialect(s) != DialectPostgres {
		return s
	}
	lower := strings.ToLower(s)
	if strings.HasPrefix(lower, "postgres://") || strings.HasPrefix(lower, "postgresql://") {
		return s
	}
	// key=value list: collapse whitespace, ensure sslmode present
	fields := strings.Fields(s)
	cleaned := strings.Join(fields, " ")
	if !strings.Contains(strings.ToLower(cleaned), "sslmode=") {
		cleaned += " sslmode=disable"
	}
	return cleaned
}

// DetectDialect classifies a DSN as sqlite, postgres or mysql.
// Heuristics: explicit URL schemes win; a go-sql-driver address
// (user:pass@tcp(host)/db) means mysql; lib/pq key=value pairs mean
// postgres; everything else (file:..., :memory:, plain paths) is sqlite.
func DetectDialect(dsn string) string {
	lower := strings.ToLower(strings.TrimSpace(dsn))
	switch {
	case strings.HasPrefix(lower, "postgres://"), strings.HasPrefix(lower, "postgresql://"):
		return DialectPostgres
	case strings.HasPrefix(lower, "mysql://"):
		return DialectMySQL
	case strings.Contains(lower, "@tcp("), strings.Contains(lower, "@unix("):
		return DialectMySQL
	case kvPairRegex.MatchString(dsn):
		return DialectPostgres
	default:
		return DialectSQLite
	}
}
