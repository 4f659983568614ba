package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

func TestValidator_SignUp(t *testing.T) {
	v := New()

	err := v.Struct(domain.SignUpInput{Email: "nope", Password: "123", FirstName: "A"})
	require.Error(t, err)
	assert.ErrorIs(t, err, errdefs.ErrValidation)

	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "password")
	assert.Contains(t, fields, "last_name")
	assert.NotContains(t, fields, "first_name")
	assert.Equal(t, "email must be a valid email address", fields["email"])

	assert.NoError(t, v.Struct(domain.SignUpInput{
		Email:     "ada@school.org",
		Password:  "secret1",
		FirstName: "Ada",
		LastName:  "Lovelace",
	}))
}

func TestValidator_NotBlank(t *testing.T) {
	v := New()

	err := v.Struct(domain.CreateClassInput{Name: "   "})
	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.Equal(t, "name cannot be blank", fields["name"])

	blank := " "
	err = v.Struct(domain.UpdateClassInput{Name: &blank})
	fields, ok = FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "name")

	assert.NoError(t, v.Struct(domain.UpdateClassInput{}))
}

func TestValidator_Comment(t *testing.T) {
	v := New()

	err := v.Struct(domain.CommentInput{Text: "ok", StartOffset: 5, EndOffset: 2})
	fields, ok := FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "endOffset")

	score := 7.0
	err = v.Struct(domain.CommentInput{Text: "ok", StartOffset: 0, EndOffset: 2, Score: &score})
	fields, ok = FieldErrors(err)
	require.True(t, ok)
	assert.Contains(t, fields, "score")

	assert.NoError(t, v.Struct(domain.CommentInput{Text: "ok", StartOffset: 0, EndOffset: 2}))
}

func TestError_Message(t *testing.T) {
	err := &Error{Fields: map[string]string{"b": "bad", "a": "worse"}}
	assert.Equal(t, "validation failed: a: worse; b: bad", err.Error())
}
