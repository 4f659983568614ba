package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/cache"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/service"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/validation"
)

func TestClassService(t *testing.T) {
	teacherID := uuid.New()
	ctx := teacherCtx(teacherID)

	t.Run("CreateOwnedByCaller", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewClassService(d.classes, validation.New(), d.cache)

		d.classes.EXPECT().CreateClass(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, c *domain.Class) (*domain.Class, error) {
				assert.Equal(t, teacherID, c.TeacherID)
				assert.Equal(t, "Biology 101", c.Name)
				return c, nil
			})
		d.cache.EXPECT().Delete(gomock.Any(), cache.DashboardKey(teacherID))

		class, err := svc.CreateClass(ctx, &domain.CreateClassInput{Name: " Biology 101 "})
		require.NoError(t, err)
		assert.Equal(t, "Biology 101", class.Name)
	})

	t.Run("CreateBlankName", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewClassService(d.classes, validation.New(), d.cache)

		_, err := svc.CreateClass(ctx, &domain.CreateClassInput{Name: "   "})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("CreateWithoutSession", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewClassService(d.classes, validation.New(), d.cache)

		_, err := svc.CreateClass(context.Background(), &domain.CreateClassInput{Name: "Biology"})
		assert.ErrorIs(t, err, errdefs.ErrAuthentication)
	})

	t.Run("ListPassesSearch", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewClassService(d.classes, validation.New(), d.cache)

		d.classes.EXPECT().ListClasses(gomock.Any(), domain.ClassFilter{TeacherID: teacherID, Search: "bio"}).
			Return([]domain.Class{{Name: "Biology"}}, nil)

		classes, err := svc.ListClasses(ctx, " bio ")
		require.NoError(t, err)
		assert.Len(t, classes, 1)
	})

	t.Run("UpdateNothing", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewClassService(d.classes, validation.New(), d.cache)

		_, err := svc.UpdateClass(ctx, uuid.New(), &domain.UpdateClassInput{})
		assert.ErrorIs(t, err, errdefs.ErrValidation)
	})

	t.Run("UpdateInvalidates", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewClassService(d.classes, validation.New(), d.cache)
		classID := uuid.New()

		d.classes.EXPECT().UpdateClass(gomock.Any(), teacherID, classID, gomock.Any()).
			Return(&domain.Class{ID: classID, Name: "Chemistry"}, nil)
		d.cache.EXPECT().Delete(gomock.Any(), cache.DashboardKey(teacherID), cache.ClassKey(classID))

		class, err := svc.UpdateClass(ctx, classID, &domain.UpdateClassInput{Name: ptr("Chemistry")})
		require.NoError(t, err)
		assert.Equal(t, "Chemistry", class.Name)
	})

	t.Run("DeleteForeignClass", func(t *testing.T) {
		d := newDeps(t)
		svc := service.NewClassService(d.classes, validation.New(), d.cache)
		classID := uuid.New()

		d.classes.EXPECT().DeleteClass(gomock.Any(), teacherID, classID).Return(errdefs.ErrNotFound)

		assert.ErrorIs(t, svc.DeleteClass(ctx, classID), errdefs.ErrNotFound)
	})
}

func TestStudentService(t *testing.T) {
	teacherID := uuid.New()
	classID := uuid.New()
	ctx := teacherCtx(teacherID)

	newSvc := func(d *deps) *service.StudentService {
		return service.NewStudentService(d.students, d.classes, d.exams, validation.New(), d.cache)
	}

	t.Run("AddNormalizesEmail", func(t *testing.T) {
		d := newDeps(t)
		d.ignoreInvalidation()
		svc := newSvc(d)

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(&domain.Class{ID: classID}, nil)
		d.students.EXPECT().CreateStudent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Student) (*domain.Student, error) {
				assert.Equal(t, "sam@school.org", s.Email)
				assert.Equal(t, classID, s.ClassID)
				return s, nil
			})
		d.exams.EXPECT().ListExamsByClass(gomock.Any(), classID).Return(nil, nil)

		_, err := svc.AddStudent(ctx, classID, &domain.CreateStudentInput{Name: "Sam", Email: "Sam@School.org"})
		require.NoError(t, err)
	})

	t.Run("AddToForeignClass", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.AddStudent(ctx, classID, &domain.CreateStudentInput{Name: "Sam", Email: "sam@school.org"})
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("AddDuplicateEmail", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(&domain.Class{ID: classID}, nil)
		d.students.EXPECT().CreateStudent(gomock.Any(), gomock.Any()).Return(nil, errdefs.ErrAlreadyExists)

		_, err := svc.AddStudent(ctx, classID, &domain.CreateStudentInput{Name: "Sam", Email: "sam@school.org"})
		assert.ErrorIs(t, err, errdefs.ErrAlreadyExists)
	})

	t.Run("ListAvailableExcludesSubmitted", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)
		examID := uuid.New()

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, examID).Return(&domain.Exam{ID: examID, ClassID: classID}, nil)
		d.students.EXPECT().ListStudents(gomock.Any(), domain.StudentFilter{
			ClassID:             classID,
			ExcludeSubmittedFor: examID,
			Search:              "sa",
		}).Return([]domain.Student{{Name: "Sam"}}, nil)

		students, err := svc.ListAvailableStudents(ctx, examID, "sa")
		require.NoError(t, err)
		assert.Len(t, students, 1)
	})

	t.Run("RemoveInvalidatesExamSummaries", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)
		studentID := uuid.New()
		exams := []domain.Exam{{ID: uuid.New(), ClassID: classID}, {ID: uuid.New(), ClassID: classID}}

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(&domain.Class{ID: classID}, nil)
		d.students.EXPECT().DeleteStudent(gomock.Any(), classID, studentID).Return(nil)
		d.exams.EXPECT().ListExamsByClass(gomock.Any(), classID).Return(exams, nil)
		d.cache.EXPECT().Delete(gomock.Any(),
			cache.DashboardKey(teacherID),
			cache.ClassKey(classID),
			cache.ExamKey(exams[0].ID),
			cache.ExamKey(exams[1].ID),
		)

		require.NoError(t, svc.RemoveStudent(ctx, classID, studentID))
	})

	t.Run("AddInvalidatesExamSummaries", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)
		examID := uuid.New()

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(&domain.Class{ID: classID}, nil)
		d.students.EXPECT().CreateStudent(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, s *domain.Student) (*domain.Student, error) { return s, nil })
		d.exams.EXPECT().ListExamsByClass(gomock.Any(), classID).Return([]domain.Exam{{ID: examID}}, nil)
		d.cache.EXPECT().Delete(gomock.Any(), cache.DashboardKey(teacherID), cache.ClassKey(classID), cache.ExamKey(examID))

		_, err := svc.AddStudent(ctx, classID, &domain.CreateStudentInput{Name: "Sam", Email: "sam@school.org"})
		require.NoError(t, err)
	})

	t.Run("RemoveStillInvalidatesWhenExamListFails", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)
		studentID := uuid.New()

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(&domain.Class{ID: classID}, nil)
		d.students.EXPECT().DeleteStudent(gomock.Any(), classID, studentID).Return(nil)
		d.exams.EXPECT().ListExamsByClass(gomock.Any(), classID).Return(nil, errors.New("db down"))
		d.cache.EXPECT().Delete(gomock.Any(), cache.DashboardKey(teacherID), cache.ClassKey(classID))

		require.NoError(t, svc.RemoveStudent(ctx, classID, studentID))
	})
}

func TestExamService(t *testing.T) {
	teacherID := uuid.New()
	classID := uuid.New()
	ctx := teacherCtx(teacherID)

	newSvc := func(d *deps) *service.ExamService {
		return service.NewExamService(d.exams, d.classes, validation.New(), d.cache)
	}

	t.Run("Create", func(t *testing.T) {
		d := newDeps(t)
		d.ignoreInvalidation()
		svc := newSvc(d)

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(&domain.Class{ID: classID}, nil)
		d.exams.EXPECT().CreateExam(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, e *domain.Exam) (*domain.Exam, error) { return e, nil })

		exam, err := svc.CreateExam(ctx, classID, &domain.CreateExamInput{Title: "Midterm"})
		require.NoError(t, err)
		assert.Equal(t, classID, exam.ClassID)
		assert.Equal(t, "Midterm", exam.Title)
	})

	t.Run("ListForeignClass", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)

		d.classes.EXPECT().GetClass(gomock.Any(), teacherID, classID).Return(nil, errdefs.ErrNotFound)

		_, err := svc.ListExams(ctx, classID)
		assert.ErrorIs(t, err, errdefs.ErrNotFound)
	})

	t.Run("DeleteInvalidatesExamAndClass", func(t *testing.T) {
		d := newDeps(t)
		svc := newSvc(d)
		examID := uuid.New()

		d.exams.EXPECT().GetExam(gomock.Any(), teacherID, examID).Return(&domain.Exam{ID: examID, ClassID: classID}, nil)
		d.exams.EXPECT().DeleteExam(gomock.Any(), teacherID, examID).Return(nil)
		d.cache.EXPECT().Delete(gomock.Any(), cache.DashboardKey(teacherID), cache.ClassKey(classID), cache.ExamKey(examID))

		require.NoError(t, svc.DeleteExam(ctx, examID))
	})
}
