package services

import (
	"time"

	"github.com/google/uuid"

	"github.com/sefask/assignment-api/models"
	"github.com/sefask/assignment-api/validation"
)

// AssignmentSummary is the projection returned by create and list; full
// question bodies only come back from Get.
type AssignmentSummary struct {
	ID            uuid.UUID  `json:"id"`
	Title         string     `json:"title"`
	Type          string     `json:"type"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	EndTime       *time.Time `json:"endTime,omitempty"`
	IsActive      bool       `json:"isActive"`
	QuestionCount int        `json:"questionCount"`
	TotalPoints   int        `json:"totalPoints"`
	CreatedAt     time.Time  `json:"createdAt"`
}

// AssignmentService handles authoring. Every operation is scoped to the
// acting author; an assignment someone else owns is indistinguishable from
// one that does not exist.
type AssignmentService struct {
	assignments AssignmentStore
}

func NewAssignmentService(assignments AssignmentStore) *AssignmentService {
	return &AssignmentService{assignments: assignments}
}

// Create validates the input and persists a new assignment for the author.
// Start and end times are stored only for live assignments.
func (s *AssignmentService) Create(authorID uuid.UUID, in validation.AssignmentInput) (*AssignmentSummary, error) {
	fieldErrs, questionErrs := validation.ValidateAssignment(in)
	if len(fieldErrs) > 0 || len(questionErrs) > 0 {
		return nil, &ValidationError{Fields: fieldErrs, Questions: questionErrs}
	}

	assignment := &models.Assignment{
		Title:       in.Title,
		Description: in.Description,
		Type:        in.Type,
		IsActive:    true,
		Duration:    in.Duration,
		Deadline:    in.Deadline,
		Questions:   in.Questions,
		AuthorID:    authorID,
	}
	if in.Type == models.AssignmentTypeLive {
		assignment.StartTime = in.StartTime
		assignment.EndTime = in.EndTime
	}

	if err := s.assignments.Insert(assignment); err != nil {
		return nil, err
	}

	summary := summarize(assignment)
	return &summary, nil
}

// List returns the author's assignments newest first, as summaries.
func (s *AssignmentService) List(authorID uuid.UUID) ([]AssignmentSummary, error) {
	assignments, err := s.assignments.FindByAuthor(authorID)
	if err != nil {
		return nil, err
	}

	summaries := make([]AssignmentSummary, len(assignments))
	for i := range assignments {
		summaries[i] = summarize(&assignments[i])
	}
	return summaries, nil
}

// Get returns the full assignment, or ErrNotFound when it does not exist
// or belongs to another author.
func (s *AssignmentService) Get(authorID, assignmentID uuid.UUID) (*models.Assignment, error) {
	return s.assignments.FindByIDAndAuthor(assignmentID, authorID)
}

// Delete removes the assignment. Deleting an already-deleted or foreign
// assignment fails with ErrNotFound.
func (s *AssignmentService) Delete(authorID, assignmentID uuid.UUID) error {
	return s.assignments.DeleteByIDAndAuthor(assignmentID, authorID)
}

func summarize(a *models.Assignment) AssignmentSummary {
	return AssignmentSummary{
		ID:            a.ID,
		Title:         a.Title,
		Type:          a.Type,
		StartTime:     a.StartTime,
		EndTime:       a.EndTime,
		IsActive:      a.IsActive,
		QuestionCount: a.QuestionCount(),
		TotalPoints:   a.TotalPoints(),
		CreatedAt:     a.CreatedAt,
	}
}
