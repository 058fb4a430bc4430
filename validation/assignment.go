// Package validation holds the pure validation rules for assignments and
// their embedded questions. Nothing here touches storage; every rule is
// applied independently so callers get all violations in one pass.
package validation

import (
	"encoding/json"
	"time"

	"github.com/sefask/assignment-api/models"
)

// FieldErrors maps a form-field name to a single human-readable message.
type FieldErrors map[string]string

// QuestionErrors pairs the index of a failing question with its errors.
type QuestionErrors struct {
	Index  int         `json:"index"`
	Errors FieldErrors `json:"errors"`
}

// AssignmentInput is the create payload before any rule has run. A nil
// Questions slice means the field was absent from the request.
type AssignmentInput struct {
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Type        string            `json:"type"`
	StartTime   *time.Time        `json:"startTime"`
	EndTime     *time.Time        `json:"endTime"`
	Duration    *int              `json:"duration"`
	Deadline    *time.Time        `json:"deadline"`
	Questions   []models.Question `json:"questions"`
}

// ValidateQuestion checks a single question and reports every violated rule.
func ValidateQuestion(q models.Question) FieldErrors {
	errs := FieldErrors{}

	switch q.Type {
	case models.QuestionTypeMultipleChoice, models.QuestionTypeTrueFalse, models.QuestionTypeShortAnswer:
	default:
		errs["type"] = "Invalid question type"
	}

	if q.Text == "" {
		errs["text"] = "Question text is required"
	}

	if q.Points < 1 {
		errs["points"] = "Points must be at least 1"
	}

	switch q.Type {
	case models.QuestionTypeMultipleChoice:
		if len(q.Options) < 2 {
			errs["options"] = "Multiple choice questions must have at least 2 options"
		}
		if idx, ok := answerIndex(q.CorrectAnswer); !ok || idx < 0 || idx >= len(q.Options) {
			errs["correctAnswer"] = "Invalid correct answer index for multiple choice"
		}
	case models.QuestionTypeTrueFalse:
		if s, ok := q.CorrectAnswer.(string); !ok || (s != "true" && s != "false") {
			errs["correctAnswer"] = "True/False questions must have true or false as answer"
		}
	case models.QuestionTypeShortAnswer:
		if s, ok := q.CorrectAnswer.(string); !ok || s == "" {
			errs["correctAnswer"] = "Short answer questions must have a string answer"
		}
	}

	return errs
}

// ValidateAssignment checks the assignment-level rules and then every
// question. The returned slice holds entries only for failing questions,
// in question order.
func ValidateAssignment(in AssignmentInput) (FieldErrors, []QuestionErrors) {
	errs := FieldErrors{}

	if in.Title == "" {
		errs["title"] = "Title is required"
	}
	if in.Description == "" {
		errs["description"] = "Description is required"
	}
	if in.Type == "" {
		errs["type"] = "Type is required"
	}
	if in.Questions == nil {
		errs["questions"] = "Questions array is required"
	}

	if in.Type == models.AssignmentTypeLive {
		if in.StartTime == nil {
			errs["startTime"] = "Start time is required for live assignments"
		}
		if in.EndTime == nil {
			errs["endTime"] = "End time is required for live assignments"
		}
		if in.StartTime != nil && in.EndTime != nil && !in.EndTime.After(*in.StartTime) {
			errs["endTime"] = "End time must be after start time"
		}
	}

	var questionErrs []QuestionErrors
	for i, q := range in.Questions {
		if qe := ValidateQuestion(q); len(qe) > 0 {
			questionErrs = append(questionErrs, QuestionErrors{Index: i, Errors: qe})
		}
	}

	return errs, questionErrs
}

// answerIndex extracts an integer option index from the loosely typed
// correctAnswer field. JSON numbers decode as float64, so a float is
// accepted only when it carries an integral value.
func answerIndex(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case float64:
		if n != float64(int(n)) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		if err != nil {
			return 0, false
		}
		return int(i), true
	default:
		return 0, false
	}
}
