package domain

type FeedbackKind string

const (
	FeedbackKindProgress    FeedbackKind = "progress"
	FeedbackKindCommentList FeedbackKind = "comment_list"
)

func (k FeedbackKind) IsValid() bool {
	return k == FeedbackKindProgress || k == FeedbackKindCommentList
}

type ProgressStatus string

const (
	ProgressStatusNotStarted ProgressStatus = "not_started"
	ProgressStatusInProgress ProgressStatus = "in_progress"
	ProgressStatusCompleted  ProgressStatus = "completed"
)

func (s ProgressStatus) IsValid() bool {
	switch s {
	case ProgressStatusNotStarted, ProgressStatusInProgress, ProgressStatusCompleted:
		return true
	default:
		return false
	}
}

// ToProgressStatus maps stored strings, including the hyphenated spelling
// older clients wrote, onto a known status.
func ToProgressStatus(status string) ProgressStatus {
	switch status {
	case "in_progress", "in-progress":
		return ProgressStatusInProgress
	case "completed":
		return ProgressStatusCompleted
	default:
		return ProgressStatusNotStarted
	}
}

type ExamStatus string

const (
	ExamStatusPending    ExamStatus = "pending"
	ExamStatusInProgress ExamStatus = "in_progress"
	ExamStatusCompleted  ExamStatus = "completed"
)
