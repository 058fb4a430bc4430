package services

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sefask/assignment-api/models"
)

type fakeUserStore struct {
	users     map[uuid.UUID]*models.User
	insertErr error
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: map[uuid.UUID]*models.User{}}
}

func (s *fakeUserStore) FindByEmail(email string) (*models.User, error) {
	for _, u := range s.users {
		if strings.EqualFold(u.Email, email) {
			return u, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeUserStore) FindByID(id uuid.UUID) (*models.User, error) {
	if u, ok := s.users[id]; ok {
		return u, nil
	}
	return nil, ErrNotFound
}

func (s *fakeUserStore) Insert(user *models.User) error {
	if s.insertErr != nil {
		return s.insertErr
	}
	for _, u := range s.users {
		if strings.EqualFold(u.Email, user.Email) {
			return ErrDuplicateEmail
		}
	}
	user.ID = uuid.New()
	user.CreatedAt = time.Now()
	s.users[user.ID] = user
	return nil
}

func (s *fakeUserStore) Save(user *models.User) error {
	s.users[user.ID] = user
	return nil
}

type fakeAssignmentStore struct {
	assignments []*models.Assignment
}

func (s *fakeAssignmentStore) Insert(a *models.Assignment) error {
	a.ID = uuid.New()
	a.CreatedAt = time.Now()
	s.assignments = append(s.assignments, a)
	return nil
}

func (s *fakeAssignmentStore) FindByAuthor(authorID uuid.UUID) ([]models.Assignment, error) {
	var out []models.Assignment
	// newest first
	for i := len(s.assignments) - 1; i >= 0; i-- {
		if s.assignments[i].AuthorID == authorID {
			out = append(out, *s.assignments[i])
		}
	}
	return out, nil
}

func (s *fakeAssignmentStore) FindByIDAndAuthor(id, authorID uuid.UUID) (*models.Assignment, error) {
	for _, a := range s.assignments {
		if a.ID == id && a.AuthorID == authorID {
			return a, nil
		}
	}
	return nil, ErrNotFound
}

func (s *fakeAssignmentStore) DeleteByIDAndAuthor(id, authorID uuid.UUID) error {
	for i, a := range s.assignments {
		if a.ID == id && a.AuthorID == authorID {
			s.assignments = append(s.assignments[:i], s.assignments[i+1:]...)
			return nil
		}
	}
	return ErrNotFound
}

type fakeMailer struct {
	sent []string
	err  error
}

func (m *fakeMailer) SendVerificationCode(toEmail, firstName, code string) error {
	if m.err != nil {
		return m.err
	}
	m.sent = append(m.sent, code)
	return nil
}

type fakeHasher struct{}

func (fakeHasher) Hash(plaintext string) (string, error) {
	return "hashed:" + plaintext, nil
}

func (fakeHasher) Matches(plaintext, digest string) bool {
	return digest == "hashed:"+plaintext
}

var errStoreDown = errors.New("store down")
