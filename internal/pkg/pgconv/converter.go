package pgconv

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

var ErrInvalidTimeOfDay = errors.New("invalid time of day")

const microsPerSecond = int64(time.Second / time.Microsecond)

func UUIDPtrFromPgtype(pu pgtype.UUID) *uuid.UUID {
	if !pu.Valid {
		return nil
	}
	id := uuid.UUID(pu.Bytes)
	return &id
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{Valid: false}
	}
	return pgtype.UUID{Bytes: *id, Valid: true}
}

func TimePtrFromPgtype(pt pgtype.Timestamptz) *time.Time {
	if !pt.Valid {
		return nil
	}
	return &pt.Time
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

// ClockFromPgtype renders a TIME column as HH:MM:SS.
func ClockFromPgtype(pt pgtype.Time) string {
	if !pt.Valid {
		return ""
	}
	secs := pt.Microseconds / microsPerSecond
	return fmt.Sprintf("%02d:%02d:%02d", secs/3600, (secs%3600)/60, secs%60)
}

// ClockToPgtype accepts HH:MM or HH:MM:SS.
func ClockToPgtype(s string) (pgtype.Time, error) {
	var t time.Time
	var err error
	switch len(s) {
	case len("15:04"):
		t, err = time.Parse("15:04", s)
	case len("15:04:05"):
		t, err = time.Parse("15:04:05", s)
	default:
		return pgtype.Time{}, ErrInvalidTimeOfDay
	}
	if err != nil {
		return pgtype.Time{}, ErrInvalidTimeOfDay
	}
	secs := int64(t.Hour()*3600 + t.Minute()*60 + t.Second())
	return pgtype.Time{Microseconds: secs * microsPerSecond, Valid: true}, nil
}

// IsNoRows checks if the error is a "no rows" error from either sql or pgx
func IsNoRows(err error) bool {
	return errors.Is(err, sql.ErrNoRows) || errors.Is(err, pgx.ErrNoRows)
}
