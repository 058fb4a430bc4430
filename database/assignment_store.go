package database

import (
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/sefask/assignment-api/models"
	"github.com/sefask/assignment-api/services"
)

// AssignmentStore is the gorm-backed services.AssignmentStore. Author
// scoping lives in the queries themselves so a foreign assignment can never
// leak through this layer.
type AssignmentStore struct {
	db *gorm.DB
}

func NewAssignmentStore(db *gorm.DB) *AssignmentStore {
	return &AssignmentStore{db: db}
}

func (s *AssignmentStore) Insert(assignment *models.Assignment) error {
	return s.db.Create(assignment).Error
}

func (s *AssignmentStore) FindByAuthor(authorID uuid.UUID) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := s.db.
		Where("author_id = ?", authorID).
		Order("created_at DESC").
		Find(&assignments).Error
	if err != nil {
		return nil, err
	}
	return assignments, nil
}

func (s *AssignmentStore) FindByIDAndAuthor(id, authorID uuid.UUID) (*models.Assignment, error) {
	var assignment models.Assignment
	err := s.db.First(&assignment, "id = ? AND author_id = ?", id, authorID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, services.ErrNotFound
		}
		return nil, err
	}
	return &assignment, nil
}

func (s *AssignmentStore) DeleteByIDAndAuthor(id, authorID uuid.UUID) error {
	result := s.db.Delete(&models.Assignment{}, "id = ? AND author_id = ?", id, authorID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return services.ErrNotFound
	}
	return nil
}
