package domain

import (
	"encoding/json"
	"time"
)

// Recommendation é uma sugestão acionável emitida pelo loop agêntico,
// chaveada por (tool, platform, entity_type, entity_id) para deduplicação
// pelo fluxo de aprovação downstream
type Recommendation struct {
	ID              int64           `json:"id,omitempty"`
	OrganizationID  string          `json:"organization_id"`
	AnalysisRunID   string          `json:"analysis_run_id"`
	Tool            string          `json:"tool"`
	Platform        string          `json:"platform"`
	EntityType      string          `json:"entity_type"`
	EntityID        string          `json:"entity_id"`
	Title           string          `json:"title"`
	Description     string          `json:"description"`
	Confidence      float64         `json:"confidence"`
	EstimatedImpact string          `json:"estimated_impact,omitempty"`
	SupportingData  json.RawMessage `json:"supporting_data,omitempty"`
	CreatedAt       time.Time       `json:"created_at,omitempty"`
}
