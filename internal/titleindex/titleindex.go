// Package titleindex answers "does this title exist as an entry in this
// language?" — the read-only oracle definition_section uses to pick which
// of two candidate languages a gloss link that carries no language of its
// own actually belongs to (original `check_titledb`/`disambiguate_language`, backed by a
// sqlite3.connect'd titles database).
package titleindex

import (
	"database/sql"
	"strings"

	_ "modernc.org/sqlite"
)

// Oracle answers whether (language, title) names a known Wiktionary entry.
type Oracle interface {
	Contains(language, title string) (bool, error)
}

// SQLiteOracle is an Oracle backed by a SQLite titles database with a
// `titles(language, title)` table, queried through the pure-Go
// modernc.org/sqlite driver (no cgo toolchain required to build this
// module).
type SQLiteOracle struct {
	db *sql.DB
}

// OpenSQLite opens the titles database at path.
func OpenSQLite(path string) (*SQLiteOracle, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	return &SQLiteOracle{db: db}, nil
}

// Close releases the underlying database handle.
func (o *SQLiteOracle) Close() error {
	return o.db.Close()
}

// Contains reports whether title is a known entry in language. Title
// comparison is case-insensitive, matching the titles table's own
// lowercased storage convention.
func (o *SQLiteOracle) Contains(language, title string) (bool, error) {
	row := o.db.QueryRow(
		`select 1 from titles where language = ? and title = ? limit 1`,
		language, strings.ToLower(title),
	)
	var found int
	switch err := row.Scan(&found); err {
	case nil:
		return true, nil
	case sql.ErrNoRows:
		return false, nil
	default:
		return false, err
	}
}

// MapOracle is an in-memory Oracle for tests: the set of (language,
// lowercased title) pairs it was built with.
type MapOracle map[[2]string]struct{}

// NewMapOracle builds a MapOracle from (language, title) pairs.
func NewMapOracle(pairs ...[2]string) MapOracle {
	m := make(MapOracle, len(pairs))
	for _, p := range pairs {
		m[[2]string{p[0], strings.ToLower(p[1])}] = struct{}{}
	}
	return m
}

// Contains implements Oracle.
func (m MapOracle) Contains(language, title string) (bool, error) {
	_, ok := m[[2]string{language, strings.ToLower(title)}]
	return ok, nil
}

// Disambiguate returns the first candidate language for which title is a
// known entry, or "" if none of them have it (original
// `disambiguate_language`).
func Disambiguate(oracle Oracle, candidates []string, title string) (string, error) {
	for _, candidate := range candidates {
		ok, err := oracle.Contains(candidate, title)
		if err != nil {
			return "", err
		}
		if ok {
			return candidate, nil
		}
	}
	return "", nil
}
