// Package highlight splits submission text into plain and commented spans.
package highlight

import (
	"errors"
	"fmt"
	"sort"
	"unicode/utf16"

	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/domain"
	"github.com/raficelkouche/rubric-ai-gradebook-helper/internal/errdefs"
)

type Mode int

const (
	// Strict rejects comments whose ranges fall outside the text, are
	// inverted, or overlap another comment.
	Strict Mode = iota
	// Clip repairs bad ranges instead and records every change it made.
	Clip
)

type Segment struct {
	Text        string          `json:"text"`
	Start       int             `json:"start"`
	End         int             `json:"end"`
	Highlighted bool            `json:"highlighted"`
	Comment     *domain.Comment `json:"comment,omitempty"`
}

type AdjustmentKind string

const (
	AdjustmentClippedStart AdjustmentKind = "clipped_start"
	AdjustmentClippedEnd   AdjustmentKind = "clipped_end"
	AdjustmentDropped      AdjustmentKind = "dropped"
)

// Adjustment describes one repair made in Clip mode.
type Adjustment struct {
	CommentID string         `json:"comment_id"`
	Kind      AdjustmentKind `json:"kind"`
	FromStart int            `json:"from_start"`
	FromEnd   int            `json:"from_end"`
	ToStart   int            `json:"to_start"`
	ToEnd     int            `json:"to_end"`
}

type Result struct {
	Segments    []Segment    `json:"segments"`
	Adjustments []Adjustment `json:"adjustments,omitempty"`
}

// RangeError names the comment whose range could not be used.
type RangeError struct {
	CommentID string
	Start     int
	End       int
	Reason    string
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("comment %q [%d,%d): %s", e.CommentID, e.Start, e.End, e.Reason)
}

func (e *RangeError) Unwrap() error {
	return errdefs.ErrInvalidRange
}

func IsRangeError(err error) bool {
	var re *RangeError
	return errors.As(err, &re)
}

// Length returns the length of s in UTF-16 code units, the unit comment
// offsets are expressed in.
func Length(s string) int {
	n := 0
	for _, r := range s {
		n += utf16.RuneLen(r)
	}
	return n
}

// Split divides text around comments. Zero-length comments never produce
// a segment. Concatenating the returned segment texts yields text.
func Split(text string, comments []domain.Comment, mode Mode) (Result, error) {
	units := utf16.Encode([]rune(text))
	length := len(units)

	ordered := make([]domain.Comment, len(comments))
	copy(ordered, comments)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].StartOffset < ordered[j].StartOffset
	})

	res := Result{Segments: make([]Segment, 0, 2*len(ordered)+1)}
	cursor := 0

	for i := range ordered {
		c := ordered[i]
		start, end := c.StartOffset, c.EndOffset
		if start == end {
			continue
		}

		if mode == Strict {
			if err := checkStrict(c, units, cursor); err != nil {
				return Result{}, err
			}
		} else {
			var adj []Adjustment
			var keep bool
			start, end, adj, keep = clip(c, units, cursor)
			res.Adjustments = append(res.Adjustments, adj...)
			if !keep {
				continue
			}
		}

		if start > cursor {
			res.Segments = append(res.Segments, plain(units, cursor, start))
		}
		res.Segments = append(res.Segments, Segment{
			Text:        string(utf16.Decode(units[start:end])),
			Start:       start,
			End:         end,
			Highlighted: true,
			Comment:     &ordered[i],
		})
		cursor = end
	}

	if cursor < length {
		res.Segments = append(res.Segments, plain(units, cursor, length))
	}
	return res, nil
}

// Validate checks comments against text with Strict rules and additionally
// rejects zero-length ranges and duplicate ids.
func Validate(text string, comments []domain.Comment) error {
	seen := make(map[string]struct{}, len(comments))
	for _, c := range comments {
		if c.ID == "" {
			return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: "missing id"}
		}
		if _, dup := seen[c.ID]; dup {
			return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: "duplicate id"}
		}
		seen[c.ID] = struct{}{}
		if c.StartOffset == c.EndOffset {
			return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: "empty range"}
		}
	}
	_, err := Split(text, comments, Strict)
	return err
}

func checkStrict(c domain.Comment, units []uint16, cursor int) error {
	length := len(units)
	switch {
	case c.StartOffset < 0:
		return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: "negative start"}
	case c.EndOffset < c.StartOffset:
		return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: "end before start"}
	case c.EndOffset > length:
		return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: fmt.Sprintf("end beyond text length %d", length)}
	case c.StartOffset < cursor:
		return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: "overlaps a previous comment"}
	case splitsPair(units, c.StartOffset) || splitsPair(units, c.EndOffset):
		return &RangeError{CommentID: c.ID, Start: c.StartOffset, End: c.EndOffset, Reason: "splits a surrogate pair"}
	}
	return nil
}

// splitsPair reports whether pos falls between the two halves of a
// surrogate pair.
func splitsPair(units []uint16, pos int) bool {
	if pos <= 0 || pos >= len(units) {
		return false
	}
	return utf16.IsSurrogate(rune(units[pos-1])) && units[pos-1] < 0xDC00 &&
		units[pos] >= 0xDC00 && units[pos] <= 0xDFFF
}

func clip(c domain.Comment, units []uint16, cursor int) (int, int, []Adjustment, bool) {
	start, end := c.StartOffset, c.EndOffset

	if end > len(units) {
		end = len(units)
	} else if splitsPair(units, end) {
		end++
	}
	if start < cursor {
		start = cursor
	} else if splitsPair(units, start) {
		start++
	}

	if start >= end {
		return 0, 0, []Adjustment{{
			CommentID: c.ID, Kind: AdjustmentDropped,
			FromStart: c.StartOffset, FromEnd: c.EndOffset, ToStart: start, ToEnd: start,
		}}, false
	}

	var adj []Adjustment
	if start != c.StartOffset {
		adj = append(adj, Adjustment{
			CommentID: c.ID, Kind: AdjustmentClippedStart,
			FromStart: c.StartOffset, FromEnd: c.EndOffset, ToStart: start, ToEnd: end,
		})
	}
	if end != c.EndOffset {
		adj = append(adj, Adjustment{
			CommentID: c.ID, Kind: AdjustmentClippedEnd,
			FromStart: c.StartOffset, FromEnd: c.EndOffset, ToStart: start, ToEnd: end,
		})
	}
	return start, end, adj, true
}

func plain(units []uint16, from, to int) Segment {
	return Segment{
		Text:  string(utf16.Decode(units[from:to])),
		Start: from,
		End:   to,
	}
}
