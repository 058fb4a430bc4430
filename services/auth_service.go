package services

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/sefask/assignment-api/models"
	"github.com/sefask/assignment-api/validation"
)

var validate = validator.New()

// AuthService orchestrates signup and signin. Emails are compared
// case-insensitively, so they are normalized to lower case before any
// lookup or insert.
type AuthService struct {
	users         UserStore
	hasher        PasswordHasher
	verifications *VerificationService
}

func NewAuthService(users UserStore, hasher PasswordHasher, verifications *VerificationService) *AuthService {
	return &AuthService{users: users, hasher: hasher, verifications: verifications}
}

// Signup validates all fields together, guards email uniqueness and
// persists a new unverified user carrying a pending verification code. The
// code email goes out after the insert; its failure does not undo signup.
func (s *AuthService) Signup(firstName, lastName, email, password string) (*models.User, error) {
	errs := validation.FieldErrors{}
	if firstName == "" {
		errs["firstName"] = "First name is required."
	}
	if lastName == "" {
		errs["lastName"] = "Last name is required."
	}
	if email == "" {
		errs["email"] = "Email is required."
	}
	if password == "" {
		errs["password"] = "Password is required."
	}
	if email != "" && validate.Var(email, "email") != nil {
		errs["email"] = "Invalid email format."
	}
	if password != "" && len(password) < 6 {
		errs["password"] = "Password must be at least 6 characters long."
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	email = strings.ToLower(email)

	if _, err := s.users.FindByEmail(email); err == nil {
		return nil, FieldError("email", "Email is already taken.")
	} else if !errors.Is(err, ErrNotFound) {
		return nil, err
	}

	digest, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Password:  digest,
	}
	if err := s.verifications.IssueCode(user); err != nil {
		return nil, err
	}

	// Concurrent signups race on the lookup above; the unique index is the
	// authoritative guard and its rejection maps to the same field error.
	if err := s.users.Insert(user); err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			return nil, FieldError("email", "Email is already taken.")
		}
		return nil, err
	}

	s.verifications.Deliver(user)
	return user, nil
}

// Signin authenticates by email and password. Both failure paths carry the
// same message so a response never reveals whether the account exists.
func (s *AuthService) Signin(email, password string) (*models.User, error) {
	errs := validation.FieldErrors{}
	if email == "" {
		errs["email"] = "Email is required."
	}
	if password == "" {
		errs["password"] = "Password is required."
	}
	if len(errs) > 0 {
		return nil, NewValidationError(errs)
	}

	user, err := s.users.FindByEmail(strings.ToLower(email))
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, FieldError("email", "Invalid email or password.")
		}
		return nil, err
	}

	if !s.hasher.Matches(password, user.Password) {
		return nil, FieldError("password", "Invalid email or password.")
	}

	return user, nil
}
