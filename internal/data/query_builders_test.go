package data

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
)

func strPtr(s string) *string { return &s }

func TestBuildTeacherUpdateQuery(t *testing.T) {
	query, args, err := buildTeacherUpdateQuery(&domain.UpdateProfileInput{
		FirstName: strPtr("Ada"),
		School:    strPtr("Hill High"),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "first_name = $1, school = $2, updated_at = now()")
	assert.Contains(t, query, "WHERE id = $3")
	assert.Equal(t, []any{"Ada", "Hill High"}, args)
}

func TestBuildTeacherUpdateQuery_Empty(t *testing.T) {
	_, _, err := buildTeacherUpdateQuery(&domain.UpdateProfileInput{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestBuildClassUpdateQuery(t *testing.T) {
	query, args, err := buildClassUpdateQuery(&domain.UpdateClassInput{
		Name:       strPtr("  Physics "),
		GradeLevel: strPtr("10"),
	})
	require.NoError(t, err)

	assert.Contains(t, query, "name = $1, grade_level = $2")
	assert.Contains(t, query, "WHERE id = $3 AND teacher_id = $4")
	assert.Equal(t, []any{"Physics", "10"}, args)

	_, _, err = buildClassUpdateQuery(&domain.UpdateClassInput{})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)
}

func TestContainsPattern(t *testing.T) {
	assert.Equal(t, "%bio%", containsPattern(" bio "))
	assert.Equal(t, `%100\%\_a%`, containsPattern("100%_a"))
}
