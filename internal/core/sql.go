package core

import (
	"strings"
	"time"
)

// Fixed-width layout so that timestamps sort chronologically as strings.
const sqlTimeLayout = "2006-01-02T15:04:05.000000000Z"

// timeToSQL converts a time struct to a string representation compatible with SQLite.
func timeToSQL(date time.Time) string {
	if date.IsZero() {
		return ""
	}
	return date.UTC().Format(sqlTimeLayout)
}

// timeFromSQL parses a string representation of a time to a time struct.
func timeFromSQL(dateStr string) time.Time {
	if dateStr == "" {
		return time.Time{}
	}
	date, err := time.Parse(sqlTimeLayout, dateStr)
	if err != nil {
		// Accept values written by hand
		date, err = time.Parse(time.RFC3339Nano, dateStr)
		if err != nil {
			return time.Time{}
		}
	}
	return date
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// likeContains returns a LIKE pattern matching values containing s literally.
// Must be used with ESCAPE '\'.
func likeContains(s string) string {
	return "%" + likeEscaper.Replace(s) + "%"
}

// placeholders returns "?, ?, ?" for n arguments.
func placeholders(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.TrimSuffix(strings.Repeat("?, ", n), ", ")
}
