package services

import (
	"log"
	"time"

	"github.com/sefask/assignment-api/models"
	"github.com/sefask/assignment-api/utils"
)

// VerificationCodeTTL is how long an issued code stays redeemable.
const VerificationCodeTTL = 15 * time.Minute

// VerificationService drives the account lifecycle: a user is created
// unverified with a pending code and moves to verified exactly once; there
// is no transition back.
type VerificationService struct {
	users  UserStore
	mailer Mailer
	now    func() time.Time
}

func NewVerificationService(users UserStore, mailer Mailer) *VerificationService {
	return &VerificationService{users: users, mailer: mailer, now: time.Now}
}

// IssueCode puts a fresh 6-digit code and expiry on the user, overwriting
// any pending code. Persisting the record is the caller's job.
func (s *VerificationService) IssueCode(user *models.User) error {
	code, err := utils.GenerateVerificationCode()
	if err != nil {
		return err
	}
	expiry := s.now().Add(VerificationCodeTTL)
	user.VerificationCode = &code
	user.VerificationCodeExpiresAt = &expiry
	return nil
}

// Deliver emails the pending code. Delivery failure is logged and swallowed:
// the code is already committed and the user can ask for a resend.
func (s *VerificationService) Deliver(user *models.User) {
	if user.VerificationCode == nil {
		return
	}
	if err := s.mailer.SendVerificationCode(user.Email, user.FirstName, *user.VerificationCode); err != nil {
		log.Printf("🔥 Failed to send verification code to %s: %v", user.Email, err)
	}
}

// Verify checks the submitted code and marks the user verified. The checks
// run in a fixed order so the reported failure is deterministic:
// already-verified, then missing code, then mismatch, then expiry.
func (s *VerificationService) Verify(user *models.User, submittedCode string) (*models.User, error) {
	if user.IsVerified {
		return nil, ErrAlreadyVerified
	}
	if user.VerificationCode == nil {
		return nil, ErrMissingCode
	}
	if *user.VerificationCode != submittedCode {
		return nil, ErrInvalidCode
	}
	if user.VerificationCodeExpiresAt == nil || !s.now().Before(*user.VerificationCodeExpiresAt) {
		return nil, ErrExpiredCode
	}

	user.IsVerified = true
	user.VerificationCode = nil
	user.VerificationCodeExpiresAt = nil
	if err := s.users.Save(user); err != nil {
		return nil, err
	}
	return user, nil
}

// Regenerate replaces the pending code for a still-unverified user and
// sends it out again.
func (s *VerificationService) Regenerate(user *models.User) error {
	if user.IsVerified {
		return ErrAlreadyVerified
	}
	if err := s.IssueCode(user); err != nil {
		return err
	}
	if err := s.users.Save(user); err != nil {
		return err
	}
	s.Deliver(user)
	return nil
}
