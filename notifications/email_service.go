package notifications

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"strings"
	"time"
)

const brevoURL = "https://api.brevo.com/v3/smtp/email"

// EmailService sends transactional mail through the Brevo HTTP API.
type EmailService struct {
	APIKey      string
	SenderEmail string
	SenderName  string

	client *http.Client
}

type brevoPayload struct {
	Sender      map[string]string   `json:"sender"`
	To          []map[string]string `json:"to"`
	Subject     string              `json:"subject"`
	HTMLContent string              `json:"htmlContent"`
}

// NewEmailService returns nil when the Brevo credentials are missing; a nil
// service is handled by callers as "email disabled".
func NewEmailService(apiKey, senderEmail, senderName string) *EmailService {
	if apiKey == "" || senderEmail == "" || senderName == "" {
		log.Println("⚠️ Email service not configured. Missing API Key, Sender Email, or Sender Name.")
		return nil
	}

	return &EmailService{
		APIKey:      apiKey,
		SenderEmail: senderEmail,
		SenderName:  senderName,
		client:      &http.Client{Timeout: 10 * time.Second},
	}
}

// SendVerificationCode mails the 6-digit code. Implements services.Mailer.
func (s *EmailService) SendVerificationCode(toEmail, firstName, code string) error {
	if s == nil {
		log.Println("Email client not initialized, skipping email send.")
		return nil
	}

	html := fmt.Sprintf(`<h1>Verify Your Email Address</h1>
<p>Dear %s,</p>
<p>Thanks for signing up! Please use the verification code below to verify your email address.</p>
<div style="font-size:24px; font-weight:700; letter-spacing:8px;">%s</div>
<p>This code will expire in 15 minutes.</p>
<p>If you did not create an account, you can safely ignore this email.</p>`, firstName, code)

	return s.send(toEmail, firstName, "Verify Your Email Address - Sefask", html)
}

func (s *EmailService) send(toEmail, toName, subject, htmlContent string) error {
	if toEmail == "" || !strings.Contains(toEmail, "@") {
		return fmt.Errorf("invalid recipient email: %s", toEmail)
	}

	recipientName := toName
	if recipientName == "" {
		recipientName = toEmail[:strings.Index(toEmail, "@")]
	}

	payload := brevoPayload{
		Sender:      map[string]string{"name": s.SenderName, "email": s.SenderEmail},
		To:          []map[string]string{{"email": toEmail, "name": recipientName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %v", err)
	}

	req, err := http.NewRequest("POST", brevoURL, bytes.NewBuffer(body))
	if err != nil {
		return fmt.Errorf("failed to create request: %v", err)
	}

	req.Header.Set("accept", "application/json")
	req.Header.Set("api-key", s.APIKey)
	req.Header.Set("content-type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %v", err)
	}
	defer resp.Body.Close()

	bodyBytes, _ := io.ReadAll(resp.Body)
	if resp.StatusCode != http.StatusCreated {
		log.Printf("Brevo API error: Status %d, Body: %s", resp.StatusCode, string(bodyBytes))
		return fmt.Errorf("failed to send email via Brevo: %s", string(bodyBytes))
	}

	return nil
}
