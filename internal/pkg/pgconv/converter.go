// Package pgconv maps between pgtype nullable columns and Go values as the
// query layer scans and binds them.
package pgconv

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
)

func nullable[T any](v T, valid bool) *T {
	if !valid {
		return nil
	}
	return &v
}

func UUIDPtrFromPgtype(v pgtype.UUID) *uuid.UUID {
	return nullable(uuid.UUID(v.Bytes), v.Valid)
}

func StringPtrFromPgtype(v pgtype.Text) *string {
	return nullable(v.String, v.Valid)
}

func TimePtrFromPgtype(v pgtype.Timestamptz) *time.Time {
	return nullable(v.Time, v.Valid)
}

func IntPtrFromInt4(v pgtype.Int4) *int {
	return nullable(int(v.Int32), v.Valid)
}

// TimeFromPgtype is for NOT NULL columns; a NULL reads as the zero time.
func TimeFromPgtype(v pgtype.Timestamptz) time.Time {
	return v.Time
}

func UUIDToPgtype(id uuid.UUID) pgtype.UUID {
	return pgtype.UUID{Bytes: id, Valid: true}
}

func UUIDPtrToPgtype(id *uuid.UUID) pgtype.UUID {
	if id == nil {
		return pgtype.UUID{}
	}
	return UUIDToPgtype(*id)
}

func StringToPgtype(s string) pgtype.Text {
	return pgtype.Text{String: s, Valid: true}
}

func StringPtrToPgtype(s *string) pgtype.Text {
	if s == nil {
		return pgtype.Text{}
	}
	return StringToPgtype(*s)
}

func TimeToPgtype(t time.Time) pgtype.Timestamptz {
	return pgtype.Timestamptz{Time: t, Valid: true}
}

func IsNoRows(err error) bool {
	return errors.Is(err, pgx.ErrNoRows)
}
