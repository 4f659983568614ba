package data

import (
	"fmt"
	"strings"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
)

var ErrNoFieldsToUpdate = fmt.Errorf("no fields to update")

type setClause struct {
	set  []string
	args []any
}

func (c *setClause) add(column string, value any) {
	c.args = append(c.args, value)
	c.set = append(c.set, fmt.Sprintf("%s = $%d", column, len(c.args)))
}

func (c *setClause) next() int {
	return len(c.args) + 1
}

func buildTeacherUpdateQuery(input *domain.UpdateProfileInput) (string, []any, error) {
	var c setClause

	if input.FirstName != nil {
		c.add("first_name", *input.FirstName)
	}
	if input.LastName != nil {
		c.add("last_name", *input.LastName)
	}
	if input.School != nil {
		c.add("school", *input.School)
	}

	if len(c.set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}
	c.set = append(c.set, "updated_at = now()")

	query := fmt.Sprintf(`
UPDATE teachers
SET %s
WHERE id = $%d
RETURNING %s
`,
		strings.Join(c.set, ", "),
		c.next(),
		teacherColumns,
	)
	return query, c.args, nil
}

func buildClassUpdateQuery(input *domain.UpdateClassInput) (string, []any, error) {
	var c setClause

	if input.Name != nil {
		c.add("name", strings.TrimSpace(*input.Name))
	}
	if input.Description != nil {
		c.add("description", *input.Description)
	}
	if input.Subject != nil {
		c.add("subject", *input.Subject)
	}
	if input.GradeLevel != nil {
		c.add("grade_level", *input.GradeLevel)
	}

	if len(c.set) == 0 {
		return "", nil, ErrNoFieldsToUpdate
	}

	idIdx := c.next()
	query := fmt.Sprintf(`
UPDATE classes
SET %s
WHERE id = $%d AND teacher_id = $%d
RETURNING %s
`,
		strings.Join(c.set, ", "),
		idIdx,
		idIdx+1,
		classColumns,
	)
	return query, c.args, nil
}
