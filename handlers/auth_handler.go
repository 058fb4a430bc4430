package handlers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	config "github.com/sefask/assignment-api/configs"
	"github.com/sefask/assignment-api/models"
	"github.com/sefask/assignment-api/services"
)

const authCookie = "authToken"

type SignupRequest struct {
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Email     string `json:"email"`
	Password  string `json:"password"`
}

type SigninRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type VerifyEmailRequest struct {
	Code string `json:"code"`
}

type AuthHandler struct {
	Auth          *services.AuthService
	Verifications *services.VerificationService
	Users         services.UserStore
}

func NewAuthHandler(auth *services.AuthService, verifications *services.VerificationService, users services.UserStore) *AuthHandler {
	return &AuthHandler{Auth: auth, Verifications: verifications, Users: users}
}

func (h *AuthHandler) Signup(c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	user, err := h.Auth.Signup(req.FirstName, req.LastName, req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"user":    user.ID,
		"email":   user.Email,
	})
}

func (h *AuthHandler) Signin(c *fiber.Ctx) error {
	var req SigninRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	user, err := h.Auth.Signin(req.Email, req.Password)
	if err != nil {
		return respondError(c, err)
	}

	token, err := createToken(user.ID)
	if err != nil {
		return respondError(c, err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    token,
		Expires:  time.Now().Add(72 * time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{
		"success": true,
		"user":    user.ID,
		"email":   user.Email,
		"token":   token,
	})
}

func (h *AuthHandler) Signout(c *fiber.Ctx) error {
	c.Cookie(&fiber.Cookie{
		Name:     authCookie,
		Value:    "",
		Expires:  time.Now().Add(-time.Hour),
		HTTPOnly: true,
		SameSite: "Lax",
	})
	return c.JSON(fiber.Map{"success": true, "message": "Signed out successfully."})
}

func (h *AuthHandler) VerifyEmail(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	var req VerifyEmailRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Cannot parse JSON"})
	}

	verified, err := h.Verifications.Verify(user, req.Code)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"success": true,
		"message": "Email verified successfully.",
		"data":    verified,
	})
}

func (h *AuthHandler) ResendVerification(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return respondError(c, err)
	}

	if err := h.Verifications.Regenerate(user); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"success": true, "message": "Verification code sent."})
}

func (h *AuthHandler) GetMe(c *fiber.Ctx) error {
	user, err := h.currentUser(c)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(fiber.Map{"success": true, "data": user})
}

func (h *AuthHandler) currentUser(c *fiber.Ctx) (*models.User, error) {
	return h.Users.FindByID(authorID(c))
}

func createToken(userID uuid.UUID) (string, error) {
	claims := jwt.MapClaims{
		"user_id": userID.String(),
		"exp":     time.Now().Add(72 * time.Hour).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.Config("JWT_SECRET")))
}

// authorID pulls the authenticated user's id out of the verified JWT.
func authorID(c *fiber.Ctx) uuid.UUID {
	token := c.Locals("user").(*jwt.Token)
	claims := token.Claims.(jwt.MapClaims)
	id, _ := uuid.Parse(claims["user_id"].(string))
	return id
}
