package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// dbtx is satisfied by both *sql.DB and *sql.Tx.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// timeLayout is fixed-width so that stored timestamps sort lexicographically.
const timeLayout = "2006-01-02T15:04:05.000000000Z"

// dateLayout stores calendar dates (experience and education periods).
const dateLayout = "2006-01-02"

func withTx(ctx context.Context, db *sql.DB, fn func(tx *sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit tx: %w", err)
	}
	return nil
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

func parseTime(s string) (time.Time, error) {
	if t, err := time.Parse(timeLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339Nano, s)
}

// calendarDate truncates t to midnight UTC of its UTC calendar day, the
// precision date columns are stored with.
func calendarDate(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func calendarDatePtr(t *time.Time) *time.Time {
	if t == nil {
		return nil
	}
	date := calendarDate(*t)
	return &date
}

func formatDate(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return parseTime(s)
}

func nullableString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullableDate(t *time.Time) any {
	if t == nil {
		return nil
	}
	return formatDate(*t)
}

func stringPtr(ns sql.NullString) *string {
	if !ns.Valid {
		return nil
	}
	s := ns.String
	return &s
}

func datePtr(ns sql.NullString) (*time.Time, error) {
	if !ns.Valid || ns.String == "" {
		return nil, nil
	}
	t, err := parseDate(ns.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func encodeStrings(values []string) (string, error) {
	if values == nil {
		values = []string{}
	}
	data, err := json.Marshal(values)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func decodeStrings(s string) ([]string, error) {
	values := []string{}
	if s == "" {
		return values, nil
	}
	if err := json.Unmarshal([]byte(s), &values); err != nil {
		return nil, err
	}
	return values, nil
}

// languageFilter returns an "AND <column> IN (...)" clause and its arguments.
// An empty list means no filtering.
func languageFilter(column string, languages []string) (string, []any) {
	if len(languages) == 0 {
		return "", nil
	}
	placeholders := make([]string, len(languages))
	args := make([]any, len(languages))
	for i, lang := range languages {
		placeholders[i] = "?"
		args[i] = lang
	}
	return fmt.Sprintf(" AND %s IN (%s)", column, strings.Join(placeholders, ", ")), args
}

// requireAffected turns a zero-row update or delete into sql.ErrNoRows.
func requireAffected(result sql.Result) error {
	n, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
