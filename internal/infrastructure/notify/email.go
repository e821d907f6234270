package notify

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"offertehub/internal/domain/entities"
	"offertehub/internal/usecase/interfaces"
)

// EmailNotifier sends transactional email through an HTTP email provider.
//
// Env vars:
//   - EMAIL_API_URL (required)
//   - EMAIL_API_KEY (optional bearer token)
//   - EMAIL_FROM (default: noreply@offertehub.nl)
//
// Both sends are best-effort; callers log and swallow errors.

type EmailNotifier struct {
	baseURL    string
	apiKey     string
	from       string
	httpClient *http.Client
}

var _ interfaces.INotifier = (*EmailNotifier)(nil)

func NewEmailNotifier() (*EmailNotifier, error) {
	baseURL := os.Getenv("EMAIL_API_URL")
	if baseURL == "" {
		return nil, errors.New("EMAIL_API_URL is not set")
	}
	from := os.Getenv("EMAIL_FROM")
	if from == "" {
		from = "noreply@offertehub.nl"
	}
	return &EmailNotifier{
		baseURL: baseURL,
		apiKey:  os.Getenv("EMAIL_API_KEY"),
		from:    from,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
	}, nil
}

type emailMessage struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
}

func (n *EmailNotifier) SendCustomerConfirmation(ctx context.Context, lead entities.Lead) error {
	slot := ""
	if lead.AppointmentSlot != nil {
		slot = lead.AppointmentSlot.Format("02-01-2006 15:04")
	}
	msg := emailMessage{
		From:    n.from,
		To:      lead.CustomerEmail,
		Subject: "Bevestiging van uw afspraak",
		Text: fmt.Sprintf(
			"Beste %s,\n\nBedankt voor uw aanvraag. Uw afspraak staat gepland op %s.\nDe geschatte prijs van uw project is € %.0f.\n\nMet vriendelijke groet,\nOfferteHub",
			lead.CustomerName, slot, lead.Breakdown.Total,
		),
	}
	return n.send(ctx, msg)
}

func (n *EmailNotifier) SendBusinessNotification(ctx context.Context, lead entities.Lead, tenant entities.Tenant) error {
	msg := emailMessage{
		From:    n.from,
		To:      tenant.ContactEmail,
		Subject: fmt.Sprintf("Nieuwe lead: %s (%s)", lead.CustomerName, lead.Domain),
		Text: fmt.Sprintf(
			"Nieuwe lead via uw widget.\n\nNaam: %s\nEmail: %s\nTelefoon: %s\nProject: %s\nOfferte: € %.0f\nLead id: %s",
			lead.CustomerName, lead.CustomerEmail, lead.CustomerPhone, lead.Domain, lead.Breakdown.Total, lead.ID,
		),
	}
	return n.send(ctx, msg)
}

func (n *EmailNotifier) send(ctx context.Context, msg emailMessage) error {
	if msg.To == "" {
		return errors.New("missing recipient address")
	}
	body, err := json.Marshal(msg)
	if err != nil {
		return err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, n.baseURL+"/v1/messages", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	if n.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+n.apiKey)
	}

	resp, err := n.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("email request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 300 {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 4096))
		return fmt.Errorf("email provider returned %d: %s", resp.StatusCode, raw)
	}
	return nil
}
