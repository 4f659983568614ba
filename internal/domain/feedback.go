package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

var ErrMalformedFeedback = errors.New("malformed feedback payload")

type Comment struct {
	ID          string   `json:"id"`
	Text        string   `json:"text"`
	StartOffset int      `json:"startOffset"`
	EndOffset   int      `json:"endOffset"`
	Category    *string  `json:"category,omitempty"`
	Score       *float64 `json:"score,omitempty"`
	Color       *string  `json:"color,omitempty"`
}

// Feedback is the payload stored next to a submission. It is either a
// progress record (status plus comments) or a bare comment list.
type Feedback struct {
	Kind     FeedbackKind
	Status   ProgressStatus
	GradedAt *time.Time
	Comments []Comment
}

func NewProgressFeedback(status ProgressStatus) Feedback {
	return Feedback{
		Kind:     FeedbackKindProgress,
		Status:   status,
		Comments: []Comment{},
	}
}

func EmptyFeedback() Feedback {
	return Feedback{Kind: FeedbackKindCommentList, Comments: []Comment{}}
}

// Promote turns a comment list into a progress record. Comment lists only
// come from legacy rows that were never graded, so they start in progress.
func (f Feedback) Promote() Feedback {
	if f.Kind == FeedbackKindProgress {
		if !f.Status.IsValid() {
			f.Status = ProgressStatusInProgress
		}
		return f
	}
	return Feedback{
		Kind:     FeedbackKindProgress,
		Status:   ProgressStatusInProgress,
		Comments: f.Comments,
	}
}

// ProgressStatus reports the status stored in the payload, not_started for
// comment lists.
func (f Feedback) ProgressStatus() ProgressStatus {
	if f.Kind != FeedbackKindProgress || !f.Status.IsValid() {
		return ProgressStatusNotStarted
	}
	return f.Status
}

func (f Feedback) FindComment(id string) (Comment, bool) {
	for _, c := range f.Comments {
		if c.ID == id {
			return c, true
		}
	}
	return Comment{}, false
}

// WithComments returns a copy of f holding comments. The slice is copied.
func (f Feedback) WithComments(comments []Comment) Feedback {
	f.Comments = append(make([]Comment, 0, len(comments)), comments...)
	return f
}

type progressWire struct {
	Kind     FeedbackKind   `json:"kind"`
	Status   ProgressStatus `json:"status"`
	GradedAt *time.Time     `json:"graded_at"`
	Comments []Comment      `json:"comments"`
}

type commentListWire struct {
	Kind     FeedbackKind `json:"kind"`
	Comments []Comment    `json:"comments"`
}

func (f Feedback) MarshalJSON() ([]byte, error) {
	comments := f.Comments
	if comments == nil {
		comments = []Comment{}
	}
	if f.Kind == FeedbackKindCommentList {
		return json.Marshal(commentListWire{Kind: f.Kind, Comments: comments})
	}
	status := f.Status
	if !status.IsValid() {
		status = ProgressStatusNotStarted
	}
	return json.Marshal(progressWire{
		Kind:     FeedbackKindProgress,
		Status:   status,
		GradedAt: f.GradedAt,
		Comments: comments,
	})
}

func (f *Feedback) UnmarshalJSON(data []byte) error {
	decoded, err := DecodeFeedback(data)
	if err != nil {
		return err
	}
	*f = decoded
	return nil
}

// DecodeFeedback reads a stored payload in any of the shapes found in the
// database: the canonical tagged object, an untagged progress object, a bare
// comment array, or any of these double-encoded as a JSON string. Empty and
// null payloads decode to an empty comment list.
func DecodeFeedback(raw []byte) (Feedback, error) {
	return decodeFeedback(raw, true)
}

func decodeFeedback(raw []byte, allowString bool) (Feedback, error) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return EmptyFeedback(), nil
	}

	switch raw[0] {
	case '"':
		if !allowString {
			return Feedback{}, fmt.Errorf("%w: nested string encoding", ErrMalformedFeedback)
		}
		var inner string
		if err := json.Unmarshal(raw, &inner); err != nil {
			return Feedback{}, fmt.Errorf("%w: %v", ErrMalformedFeedback, err)
		}
		return decodeFeedback([]byte(inner), false)
	case '[':
		var comments []Comment
		if err := json.Unmarshal(raw, &comments); err != nil {
			return Feedback{}, fmt.Errorf("%w: %v", ErrMalformedFeedback, err)
		}
		return EmptyFeedback().WithComments(comments), nil
	case '{':
		var wire struct {
			Kind     *string    `json:"kind"`
			Status   string     `json:"status"`
			GradedAt *time.Time `json:"graded_at"`
			Comments []Comment  `json:"comments"`
		}
		if err := json.Unmarshal(raw, &wire); err != nil {
			return Feedback{}, fmt.Errorf("%w: %v", ErrMalformedFeedback, err)
		}
		if wire.Comments == nil {
			wire.Comments = []Comment{}
		}
		kind := FeedbackKindProgress
		if wire.Kind != nil {
			kind = FeedbackKind(*wire.Kind)
		}
		switch kind {
		case FeedbackKindProgress:
			return Feedback{
				Kind:     FeedbackKindProgress,
				Status:   ToProgressStatus(wire.Status),
				GradedAt: wire.GradedAt,
				Comments: wire.Comments,
			}, nil
		case FeedbackKindCommentList:
			return Feedback{Kind: FeedbackKindCommentList, Comments: wire.Comments}, nil
		default:
			return Feedback{}, fmt.Errorf("%w: unknown kind %q", ErrMalformedFeedback, kind)
		}
	default:
		return Feedback{}, fmt.Errorf("%w: unexpected token %q", ErrMalformedFeedback, raw[0])
	}
}
