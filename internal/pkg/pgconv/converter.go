package pgconv

import (
	"database/sql"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// DateToPgtype stores the calendar day of t; the zone is dropped.
func DateToPgtype(t time.Time) pgtype.Date {
	if t.IsZero() {
		return pgtype.Date{Valid: false}
	}
	y, m, d := t.Date()
	return pgtype.Date{Time: time.Date(y, m, d, 0, 0, 0, 0, time.UTC), Valid: true}
}

// DateFromPgtype places a DATE column at midnight in loc.
func DateFromPgtype(pd pgtype.Date, loc *time.Location) time.Time {
	if !pd.Valid {
		return time.Time{}
	}
	y, m, d := pd.Time.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, loc)
}

// NaiveToPgtype stores the wall clock of t in a TIMESTAMP WITHOUT TIME ZONE column.
func NaiveToPgtype(t time.Time) pgtype.Timestamp {
	if t.IsZero() {
		return pgtype.Timestamp{Valid: false}
	}
	y, m, d := t.Date()
	return pgtype.Timestamp{
		Time:  time.Date(y, m, d, t.Hour(), t.Minute(), t.Second(), 0, time.UTC),
		Valid: true,
	}
}

// NaiveFromPgtype reads a TIMESTAMP WITHOUT TIME ZONE as wall-clock time in loc.
func NaiveFromPgtype(pt pgtype.Timestamp, loc *time.Location) time.Time {
	if !pt.Valid {
		return time.Time{}
	}
	y, m, d := pt.Time.Date()
	return time.Date(y, m, d, pt.Time.Hour(), pt.Time.Minute(), pt.Time.Second(), 0, loc)
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
