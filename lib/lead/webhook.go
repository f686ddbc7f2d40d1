package leadhandler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	leadapimodels "pv-leads-backend/models/api/lead"
)

const webhookTimeout = 10 * time.Second

type WebhookPayload struct {
	Event string                 `json:"event"`
	Lead  leadapimodels.LeadView `json:"lead"`
}

type webhookSender interface {
	Send(ctx context.Context, url string, payload WebhookPayload) error
}

type httpWebhook struct {
	client *http.Client
}

func newHttpWebhook() webhookSender {
	return httpWebhook{client: &http.Client{Timeout: webhookTimeout}}
}

func (w httpWebhook) Send(ctx context.Context, url string, payload WebhookPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "erreur de sérialisation du webhook")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "erreur de création de la requête webhook")
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := w.client.Do(req)
	if err != nil {
		return errors.Wrap(err, "erreur d'envoi du webhook")
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.Errorf("le webhook a répondu avec le statut %v", resp.StatusCode)
	}
	return nil
}
