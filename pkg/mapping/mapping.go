package mapping

import "database/sql"

// ValueToSQLNullString wraps a string into sql.NullString, treating the empty
// string as NULL.
func ValueToSQLNullString(value string) sql.NullString {
	if value == "" {
		return sql.NullString{}
	}
	return sql.NullString{String: value, Valid: true}
}

// SQLNullStringToValue unwraps sql.NullString into a plain string.
func SQLNullStringToValue(value sql.NullString) string {
	if !value.Valid {
		return ""
	}
	return value.String
}

// Pointer returns a pointer to the given value.
func Pointer[T any](v T) *T {
	return &v
}

// Value dereferences the pointer, returning the zero value for nil.
func Value[T any](p *T) T {
	if p == nil {
		var zero T
		return zero
	}
	return *p
}
