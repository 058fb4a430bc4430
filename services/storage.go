package services

import (
	"github.com/google/uuid"

	"github.com/sefask/assignment-api/models"
)

// UserStore is the persistence port for user records. Implementations
// return ErrNotFound for a miss and ErrDuplicateEmail when the unique
// email index rejects an insert.
type UserStore interface {
	FindByEmail(email string) (*models.User, error)
	FindByID(id uuid.UUID) (*models.User, error)
	Insert(user *models.User) error
	Save(user *models.User) error
}

// AssignmentStore is the persistence port for assignments. Every lookup is
// scoped to the owning author; a record owned by someone else behaves like
// a missing one.
type AssignmentStore interface {
	Insert(assignment *models.Assignment) error
	FindByAuthor(authorID uuid.UUID) ([]models.Assignment, error)
	FindByIDAndAuthor(id, authorID uuid.UUID) (*models.Assignment, error)
	DeleteByIDAndAuthor(id, authorID uuid.UUID) error
}

// Mailer delivers the verification code. Delivery failures are reported to
// the caller but must never unwind an already-stored code.
type Mailer interface {
	SendVerificationCode(toEmail, firstName, code string) error
}

// PasswordHasher abstracts the digest primitive.
type PasswordHasher interface {
	Hash(plaintext string) (string, error)
	Matches(plaintext, digest string) bool
}
