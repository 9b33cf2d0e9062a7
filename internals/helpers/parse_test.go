package helper_test

import (
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "studyhub_backend/internals/helpers"
	"studyhub_backend/internals/helpers/apperr"
)

func TestParseUUID(t *testing.T) {
	want := uuid.New()

	got, err := helper.ParseUUID(want.String())
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// surrounding whitespace is tolerated
	got, err = helper.ParseUUID("  " + want.String() + " ")
	require.NoError(t, err)
	assert.Equal(t, want, got)

	for _, bad := range []string{"", "abc", "123", want.String() + "x"} {
		_, err := helper.ParseUUID(bad)
		assert.True(t, apperr.Is(err, apperr.InvalidArgument), "input %q", bad)
	}
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "siti@studyhub.io", helper.NormalizeEmail("  SITI@StudyHub.IO "))
	assert.Equal(t, "", helper.NormalizeEmail("   "))
}

func TestIsUniqueViolation(t *testing.T) {
	assert.True(t, helper.IsUniqueViolation(errors.New(`ERROR: duplicate key value violates unique constraint "uq_bookings_session_student" (SQLSTATE 23505)`)))
	assert.True(t, helper.IsUniqueViolation(errors.New("duplicate key value")))
	assert.False(t, helper.IsUniqueViolation(errors.New("connection refused")))
	assert.False(t, helper.IsUniqueViolation(nil))
}
