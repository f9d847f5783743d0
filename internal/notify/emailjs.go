package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// DefaultEndpoint is the EmailJS REST endpoint.
const DefaultEndpoint = "https://api.emailjs.com/api/v1.0/email/send"

// EmailJSSink sends the confirmation through an EmailJS-compatible
// service, the same one the mobile app used for its "change_profile_success"
// template. Template params carry the change-set as plain text and as
// a comma-joined HTML variant.
type EmailJSSink struct {
	endpoint   string
	serviceID  string
	templateID string
	publicKey  string
	client     *http.Client
}

func NewEmailJSSink(endpoint, serviceID, templateID, publicKey string, timeout time.Duration) *EmailJSSink {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &EmailJSSink{
		endpoint:   endpoint,
		serviceID:  serviceID,
		templateID: templateID,
		publicKey:  publicKey,
		client:     &http.Client{Timeout: timeout},
	}
}

type emailJSRequest struct {
	ServiceID      string            `json:"service_id"`
	TemplateID     string            `json:"template_id"`
	UserID         string            `json:"user_id"`
	TemplateParams map[string]string `json:"template_params"`
}

func (s *EmailJSSink) Send(ctx context.Context, to Recipient, changes []Change) error {
	lines := make([]string, 0, len(changes))
	for _, c := range changes {
		lines = append(lines, c.String())
	}

	payload := emailJSRequest{
		ServiceID:  s.serviceID,
		TemplateID: s.templateID,
		UserID:     s.publicKey,
		TemplateParams: map[string]string{
			"to_name":      to.Name,
			"to_email":     to.Email,
			"changes":      strings.Join(lines, "\n"),
			"changes_html": strings.Join(lines, ", "),
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal email request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build email request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("send email request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("email service returned %d: %s", resp.StatusCode, strings.TrimSpace(string(detail)))
	}
	return nil
}
