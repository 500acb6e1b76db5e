package domain

import (
	"encoding/json"
	"time"
)

// SummaryTTL é o tempo de vida de um resumo antes de ser elegível para limpeza
const SummaryTTL = 24 * time.Hour

// AnalysisSummary é um resumo de performance em linguagem natural,
// gerado uma única vez por (analysis_run_id, level, entity_id)
type AnalysisSummary struct {
	ID              int64           `json:"id"`
	OrganizationID  string          `json:"organization_id"`
	Level           EntityLevel     `json:"level"`
	Platform        *string         `json:"platform,omitempty"`
	EntityID        string          `json:"entity_id"`
	EntityName      string          `json:"entity_name"`
	Summary         string          `json:"summary"`
	MetricsSnapshot json.RawMessage `json:"metrics_snapshot,omitempty"`
	Days            int             `json:"days"`
	AnalysisRunID   string          `json:"analysis_run_id"`
	ExpiresAt       time.Time       `json:"expires_at"`
	CreatedAt       time.Time       `json:"created_at"`
}

// AnalysisResult é o resultado completo de uma execução de orquestração
type AnalysisResult struct {
	RunID                    string            `json:"run_id"`
	CrossPlatformSummary     string            `json:"cross_platform_summary"`
	PlatformSummaries        map[string]string `json:"platform_summaries"`
	EntityCount              int               `json:"entity_count"`
	DurationMs               int64             `json:"duration_ms"`
	Recommendations          []*Recommendation `json:"recommendations"`
	AgenticLoopIterations    int               `json:"agentic_loop_iterations"`
	AgenticLoopStoppedReason StoppedReason     `json:"agentic_loop_stopped_reason"`
}

// AnalysisCallLog é o registro de auditoria de uma chamada de geração
// (append-only, nunca lido pelo núcleo de orquestração)
type AnalysisCallLog struct {
	OrganizationID string      `json:"organization_id"`
	Level          EntityLevel `json:"level"`
	Platform       *string     `json:"platform,omitempty"`
	EntityID       string      `json:"entity_id"`
	EntityName     string      `json:"entity_name"`
	Provider       string      `json:"provider"`
	Model          string      `json:"model"`
	InputTokens    int64       `json:"input_tokens"`
	OutputTokens   int64       `json:"output_tokens"`
	LatencyMs      int64       `json:"latency_ms"`
	Prompt         string      `json:"prompt"`
	Response       string      `json:"response"`
	AnalysisRunID  string      `json:"analysis_run_id"`
}
