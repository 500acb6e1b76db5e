package jobs

import (
	"bytes"
	"fmt"
	"net/http"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

// WebhookNotifier entrega o evento de término de um job para a URL
// registrada na criação. A entrega é no máximo uma vez: sem retry
type WebhookNotifier interface {
	Notify(job *domain.AnalysisJob) error
}

type webhookPayload struct {
	Event         string     `json:"event"`
	JobID         string     `json:"job_id"`
	Status        string     `json:"status"`
	AnalysisRunID *string    `json:"analysis_run_id,omitempty"`
	ErrorMessage  *string    `json:"error_message,omitempty"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

type webhookNotifier struct {
	client *http.Client
}

func NewWebhookNotifier(cfg config.Webhook) WebhookNotifier {
	return &webhookNotifier{
		client: &http.Client{
			Timeout: time.Duration(cfg.TimeoutSeconds) * time.Second,
		},
	}
}

func (n *webhookNotifier) Notify(job *domain.AnalysisJob) error {
	payload := webhookPayload{
		Event:         "analysis.finished",
		JobID:         job.ID,
		Status:        string(job.Status),
		AnalysisRunID: job.AnalysisRunID,
		ErrorMessage:  job.ErrorMessage,
		CompletedAt:   job.CompletedAt,
	}

	body, err := jsoniter.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao serializar o payload do webhook: %w", err)
	}

	resp, err := n.client.Post(*job.WebhookURL, "application/json", bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("erro ao enviar o webhook: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return fmt.Errorf("webhook respondeu com status %d", resp.StatusCode)
	}

	return nil
}
