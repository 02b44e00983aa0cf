package supabase

import (
	"database/sql"
	"fmt"
	"time"
)

// timestampLayout is fixed width so SQLite's text comparison orders values
// chronologically. Postgres parses it as a timestamptz literal.
const timestampLayout = "2006-01-02 15:04:05.000000-07:00"

var timestampParseLayouts = []string{
	timestampLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	time.RFC3339Nano,
	"2006-01-02 15:04:05.999999999 -0700 MST",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

func ts(t time.Time) string {
	return t.UTC().Format(timestampLayout)
}

func nullTS(t sql.NullTime) interface{} {
	if !t.Valid {
		return nil
	}
	return ts(t.Time)
}

// dbTime scans timestamps from either driver: lib/pq returns time.Time,
// modernc sqlite returns time.Time or the stored text.
type dbTime struct {
	Time  time.Time
	Valid bool
}

func (t *dbTime) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		t.Time, t.Valid = time.Time{}, false
		return nil
	case time.Time:
		t.Time, t.Valid = v.UTC(), true
		return nil
	case string:
		return t.parse(v)
	case []byte:
		return t.parse(string(v))
	default:
		return fmt.Errorf("cannot scan %T into timestamp", src)
	}
}

func (t *dbTime) parse(s string) error {
	for _, layout := range timestampParseLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			t.Time, t.Valid = parsed.UTC(), true
			return nil
		}
	}
	return fmt.Errorf("unrecognised timestamp %q", s)
}

func (t dbTime) NullTime() sql.NullTime {
	return sql.NullTime{Time: t.Time, Valid: t.Valid}
}
