package repositories

import (
	"strconv"
	"strings"
)

// Placeholder style of the underlying driver.
type Dialect int

const (
	DialectSQLite Dialect = iota
	DialectPostgres
)

// DialectFor maps a config driver name to its placeholder dialect.
func DialectFor(driver string) Dialect {
	if driver == "postgres" || driver == "pgx" {
		return DialectPostgres
	}
	return DialectSQLite
}

// rebind rewrites '?' placeholders to $1..$n for Postgres.
func (d Dialect) rebind(query string) string {
	if d != DialectPostgres {
		return query
	}

	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
