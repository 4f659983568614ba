// Package stats reduces submission grades into the summaries shown on the
// dashboard, class and exam pages.
package stats

import (
	"fmt"
	"math"

	"github.com/google/uuid"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
)

const NotAvailable = "N/A"

var letterBands = []struct {
	letter string
	min    float64
}{
	{"A", 90},
	{"B", 80},
	{"C", 70},
	{"D", 60},
	{"F", math.Inf(-1)},
}

// Average is the mean of the non-nil grades. ok is false when there are none.
func Average(grades []*float64) (avg float64, ok bool) {
	var sum float64
	var n int
	for _, g := range grades {
		if g == nil {
			continue
		}
		sum += *g
		n++
	}
	if n == 0 {
		return 0, false
	}
	return sum / float64(n), true
}

// FormatAverage renders an average with one decimal, or N/A.
func FormatAverage(avg float64, ok bool) string {
	if !ok {
		return NotAvailable
	}
	return fmt.Sprintf("%.1f", avg)
}

func Letter(grade float64) string {
	for _, b := range letterBands {
		if grade >= b.min {
			return b.letter
		}
	}
	return "F"
}

type Bucket struct {
	Range string `json:"range"`
	Count int    `json:"count"`
}

// bucketIndex maps a grade to one of ten ranges: 0-10, 11-20, ..., 91-100.
func bucketIndex(grade float64) int {
	g := math.Round(grade)
	if g <= 10 {
		return 0
	}
	i := int(math.Ceil(g/10)) - 1
	if i > 9 {
		i = 9
	}
	return i
}

func emptyBuckets() []Bucket {
	buckets := make([]Bucket, 10)
	buckets[0].Range = "0-10"
	for i := 1; i < 10; i++ {
		buckets[i].Range = fmt.Sprintf("%d-%d", i*10+1, (i+1)*10)
	}
	return buckets
}

type GradeSummary struct {
	Count       int            `json:"submission_count"`
	GradedCount int            `json:"graded_count"`
	Average     *float64       `json:"average"`
	AverageText string         `json:"average_display"`
	Highest     *float64       `json:"highest"`
	Lowest      *float64       `json:"lowest"`
	Letters     map[string]int `json:"letter_distribution"`
	Buckets     []Bucket       `json:"score_distribution"`
}

// Summarize reduces a set of submissions, graded or not.
func Summarize(subs []domain.Submission) GradeSummary {
	grades := make([]*float64, len(subs))
	for i := range subs {
		grades[i] = subs[i].Grade
	}
	return SummarizeGrades(grades)
}

func SummarizeGrades(grades []*float64) GradeSummary {
	sum := GradeSummary{
		Count:   len(grades),
		Letters: map[string]int{"A": 0, "B": 0, "C": 0, "D": 0, "F": 0},
		Buckets: emptyBuckets(),
	}

	for _, g := range grades {
		if g == nil {
			continue
		}
		v := *g
		sum.GradedCount++
		if sum.Highest == nil || v > *sum.Highest {
			sum.Highest = &v
		}
		if sum.Lowest == nil || v < *sum.Lowest {
			sum.Lowest = &v
		}
		sum.Letters[Letter(v)]++
		sum.Buckets[bucketIndex(v)].Count++
	}

	avg, ok := Average(grades)
	if ok {
		sum.Average = &avg
	}
	sum.AverageText = FormatAverage(avg, ok)
	return sum
}

// ExamStatus rolls the submissions of one exam into a single status.
func ExamStatus(subs []domain.Submission) domain.ExamStatus {
	if len(subs) == 0 {
		return domain.ExamStatusPending
	}
	graded := 0
	for i := range subs {
		if subs[i].Grade != nil {
			graded++
		}
	}
	switch {
	case graded == len(subs):
		return domain.ExamStatusCompleted
	case graded > 0:
		return domain.ExamStatusInProgress
	default:
		return domain.ExamStatusPending
	}
}

type ExamSummary struct {
	ExamID       uuid.UUID         `json:"exam_id"`
	Title        string            `json:"title"`
	Status       domain.ExamStatus `json:"status"`
	StudentCount int               `json:"student_count"`
	Grades       GradeSummary      `json:"grades"`
}

func SummarizeExam(exam domain.Exam, studentCount int, subs []domain.Submission) ExamSummary {
	return ExamSummary{
		ExamID:       exam.ID,
		Title:        exam.Title,
		Status:       ExamStatus(subs),
		StudentCount: studentCount,
		Grades:       Summarize(subs),
	}
}

type ClassSummary struct {
	ClassID      uuid.UUID     `json:"class_id"`
	Name         string        `json:"name"`
	StudentCount int           `json:"student_count"`
	ExamCount    int           `json:"exam_count"`
	Grades       GradeSummary  `json:"grades"`
	Exams        []ExamSummary `json:"exams"`
}

// SummarizeClass groups subs by exam. Submissions for exams not in exams are ignored.
func SummarizeClass(class domain.Class, studentCount int, exams []domain.Exam, subs []domain.Submission) ClassSummary {
	byExam := make(map[uuid.UUID][]domain.Submission, len(exams))
	for _, s := range subs {
		byExam[s.ExamID] = append(byExam[s.ExamID], s)
	}

	out := ClassSummary{
		ClassID:      class.ID,
		Name:         class.Name,
		StudentCount: studentCount,
		ExamCount:    len(exams),
		Exams:        make([]ExamSummary, 0, len(exams)),
	}
	var all []domain.Submission
	for _, e := range exams {
		es := byExam[e.ID]
		all = append(all, es...)
		out.Exams = append(out.Exams, SummarizeExam(e, studentCount, es))
	}
	out.Grades = Summarize(all)
	return out
}

type ClassAverage struct {
	ClassID     uuid.UUID `json:"class_id"`
	Name        string    `json:"name"`
	Average     *float64  `json:"average"`
	AverageText string    `json:"average_display"`
	GradedCount int       `json:"graded_count"`
}

type Dashboard struct {
	TotalClasses  int            `json:"total_classes"`
	TotalExams    int            `json:"total_exams"`
	TotalStudents int            `json:"total_students"`
	Grades        GradeSummary   `json:"grades"`
	Classes       []ClassAverage `json:"classes"`
}

// DashboardInput is everything the dashboard is computed from. Submissions
// are attributed to a class through ClassOfExam.
type DashboardInput struct {
	Classes      []domain.Class
	ExamCount    int
	StudentCount int
	Submissions  []domain.Submission
	ClassOfExam  map[uuid.UUID]uuid.UUID
}

func SummarizeDashboard(in DashboardInput) Dashboard {
	perClass := make(map[uuid.UUID][]*float64, len(in.Classes))
	for i := range in.Submissions {
		s := &in.Submissions[i]
		classID, ok := in.ClassOfExam[s.ExamID]
		if !ok {
			continue
		}
		perClass[classID] = append(perClass[classID], s.Grade)
	}

	d := Dashboard{
		TotalClasses:  len(in.Classes),
		TotalExams:    in.ExamCount,
		TotalStudents: in.StudentCount,
		Grades:        Summarize(in.Submissions),
		Classes:       make([]ClassAverage, 0, len(in.Classes)),
	}
	for _, c := range in.Classes {
		gs := SummarizeGrades(perClass[c.ID])
		d.Classes = append(d.Classes, ClassAverage{
			ClassID:     c.ID,
			Name:        c.Name,
			Average:     gs.Average,
			AverageText: gs.AverageText,
			GradedCount: gs.GradedCount,
		})
	}
	return d
}
