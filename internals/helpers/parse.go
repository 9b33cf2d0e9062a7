package helper

import (
	"strings"

	"github.com/google/uuid"

	"studyhub_backend/internals/helpers/apperr"
)

// ParseUUID validates an identity coming in from a URL or JSON body.
// A malformed id is a client error, rejected up front; it never falls
// back to a weaker filter.
func ParseUUID(s string) (uuid.UUID, error) {
	id, err := uuid.Parse(strings.TrimSpace(s))
	if err != nil {
		return uuid.Nil, apperr.New(apperr.InvalidArgument, "Invalid id format")
	}
	return id, nil
}

// NormalizeEmail trims and lowercases an email for lookups.
func NormalizeEmail(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// IsUniqueViolation detects a Postgres duplicate-key failure.
func IsUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "sqlstate 23505") ||
		strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint")
}
