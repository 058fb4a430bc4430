package validation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sefask/assignment-api/models"
)

func TestValidateQuestionMultipleChoice(t *testing.T) {
	q := models.Question{
		Type:          models.QuestionTypeMultipleChoice,
		Text:          "Pick one",
		Points:        1,
		Options:       []string{"A", "B"},
		CorrectAnswer: float64(1),
	}
	assert.Empty(t, ValidateQuestion(q))

	q.CorrectAnswer = float64(2)
	errs := ValidateQuestion(q)
	assert.Contains(t, errs, "correctAnswer")

	q.CorrectAnswer = float64(-1)
	assert.Contains(t, ValidateQuestion(q), "correctAnswer")

	q.CorrectAnswer = 0.5
	assert.Contains(t, ValidateQuestion(q), "correctAnswer")

	q.CorrectAnswer = "1"
	assert.Contains(t, ValidateQuestion(q), "correctAnswer")
}

func TestValidateQuestionMultipleChoiceMissingOptions(t *testing.T) {
	q := models.Question{
		Type:          models.QuestionTypeMultipleChoice,
		Text:          "Pick one",
		Points:        1,
		CorrectAnswer: float64(0),
	}

	errs := ValidateQuestion(q)
	// the index check runs against a zero-length option list, so both
	// fields fail independently
	assert.Contains(t, errs, "options")
	assert.Contains(t, errs, "correctAnswer")
}

func TestValidateQuestionTrueFalse(t *testing.T) {
	q := models.Question{
		Type:          models.QuestionTypeTrueFalse,
		Text:          "Yes or no",
		Points:        1,
		CorrectAnswer: "true",
	}
	assert.Empty(t, ValidateQuestion(q))

	q.CorrectAnswer = "false"
	assert.Empty(t, ValidateQuestion(q))

	q.CorrectAnswer = "maybe"
	assert.Contains(t, ValidateQuestion(q), "correctAnswer")

	// the literal strings are required, a boolean is not accepted
	q.CorrectAnswer = true
	assert.Contains(t, ValidateQuestion(q), "correctAnswer")
}

func TestValidateQuestionShortAnswer(t *testing.T) {
	q := models.Question{
		Type:          models.QuestionTypeShortAnswer,
		Text:          "Explain",
		Points:        1,
		CorrectAnswer: "photosynthesis",
	}
	assert.Empty(t, ValidateQuestion(q))

	q.CorrectAnswer = ""
	assert.Contains(t, ValidateQuestion(q), "correctAnswer")

	q.CorrectAnswer = float64(3)
	assert.Contains(t, ValidateQuestion(q), "correctAnswer")
}

func TestValidateQuestionCollectsAllViolations(t *testing.T) {
	q := models.Question{
		Type:          "essay",
		Text:          "",
		Points:        0,
		CorrectAnswer: nil,
	}

	errs := ValidateQuestion(q)
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "text")
	assert.Contains(t, errs, "points")
}

func TestValidateAssignmentRequiredFields(t *testing.T) {
	errs, questionErrs := ValidateAssignment(AssignmentInput{})

	assert.Empty(t, questionErrs)
	assert.Contains(t, errs, "title")
	assert.Contains(t, errs, "description")
	assert.Contains(t, errs, "type")
	assert.Contains(t, errs, "questions")
}

func TestValidateAssignmentEmptyQuestionsIsPresent(t *testing.T) {
	errs, _ := ValidateAssignment(AssignmentInput{
		Title:       "t",
		Description: "d",
		Type:        "homework",
		Questions:   []models.Question{},
	})
	assert.NotContains(t, errs, "questions")
}

func TestValidateAssignmentLiveTimes(t *testing.T) {
	in := AssignmentInput{
		Title:       "t",
		Description: "d",
		Type:        models.AssignmentTypeLive,
		Questions:   []models.Question{},
	}

	errs, _ := ValidateAssignment(in)
	assert.Contains(t, errs, "startTime")
	assert.Contains(t, errs, "endTime")

	at := time.Now()
	in.StartTime = &at
	in.EndTime = &at
	errs, _ = ValidateAssignment(in)
	assert.NotContains(t, errs, "startTime")
	assert.Equal(t, "End time must be after start time", errs["endTime"])

	end := at.Add(time.Minute)
	in.EndTime = &end
	errs, _ = ValidateAssignment(in)
	assert.Empty(t, errs)
}

func TestValidateAssignmentNonLiveIgnoresTimes(t *testing.T) {
	errs, _ := ValidateAssignment(AssignmentInput{
		Title:       "t",
		Description: "d",
		Type:        "homework",
		Questions:   []models.Question{},
	})
	assert.NotContains(t, errs, "startTime")
	assert.NotContains(t, errs, "endTime")
}

func TestValidateAssignmentIndexesFailingQuestions(t *testing.T) {
	in := AssignmentInput{
		Title:       "t",
		Description: "d",
		Type:        "homework",
		Questions: []models.Question{
			{Type: models.QuestionTypeShortAnswer, Text: "ok", Points: 1, CorrectAnswer: "fine"},
			{Type: models.QuestionTypeTrueFalse, Text: "bad", Points: 1, CorrectAnswer: "maybe"},
			{Type: models.QuestionTypeMultipleChoice, Text: "", Points: 0, Options: []string{"A", "B"}, CorrectAnswer: float64(5)},
		},
	}

	errs, questionErrs := ValidateAssignment(in)
	assert.Empty(t, errs)
	require.Len(t, questionErrs, 2)

	assert.Equal(t, 1, questionErrs[0].Index)
	assert.Contains(t, questionErrs[0].Errors, "correctAnswer")

	assert.Equal(t, 2, questionErrs[1].Index)
	assert.Contains(t, questionErrs[1].Errors, "text")
	assert.Contains(t, questionErrs[1].Errors, "points")
	assert.Contains(t, questionErrs[1].Errors, "correctAnswer")
}
