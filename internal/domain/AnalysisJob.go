package domain

import (
	"math"
	"time"
)

// JobStatus representa o estado de um job de análise
type JobStatus string

const (
	JobStatusPending   JobStatus = "pending"
	JobStatusRunning   JobStatus = "running"
	JobStatusCompleted JobStatus = "completed"
	JobStatusFailed    JobStatus = "failed"
)

// IsTerminal indica se o status é final (não admite novas transições)
func (s JobStatus) IsTerminal() bool {
	return s == JobStatusCompleted || s == JobStatusFailed
}

// StoppedReason é o conjunto fechado de motivos de parada do loop agêntico
type StoppedReason string

const (
	StoppedMaxRecommendations StoppedReason = "max_recommendations"
	StoppedNoToolCalls        StoppedReason = "no_tool_calls"
	StoppedMaxIterations      StoppedReason = "max_iterations"
	StoppedEarlyTermination   StoppedReason = "early_termination"
)

// AnalysisJob é o registro persistido de uma execução de orquestração
type AnalysisJob struct {
	ID                string     `json:"id"`
	OrganizationID    string     `json:"organization_id"`
	Days              int        `json:"days"`
	WebhookURL        *string    `json:"webhook_url,omitempty"`
	Status            JobStatus  `json:"status"`
	TotalEntities     *int       `json:"total_entities,omitempty"`
	ProcessedEntities int        `json:"processed_entities"`
	CurrentLevel      *string    `json:"current_level,omitempty"`
	AnalysisRunID     *string    `json:"analysis_run_id,omitempty"`
	ErrorMessage      *string    `json:"error_message,omitempty"`
	StoppedReason     *string    `json:"stopped_reason,omitempty"`
	TerminationReason *string    `json:"termination_reason,omitempty"`
	CreatedAt         time.Time  `json:"created_at"`
	StartedAt         *time.Time `json:"started_at,omitempty"`
	CompletedAt       *time.Time `json:"completed_at,omitempty"`
}

// JobProgress é a visão de progresso exposta pela API
type JobProgress struct {
	JobID             string    `json:"job_id"`
	Status            JobStatus `json:"status"`
	ProcessedEntities int       `json:"processed_entities"`
	TotalEntities     *int      `json:"total_entities,omitempty"`
	CurrentLevel      *string   `json:"current_level,omitempty"`
	PercentComplete   *int      `json:"percent_complete,omitempty"`
}

// ProgressOf calcula o progresso percentual de um job quando o total é conhecido
func ProgressOf(job *AnalysisJob) *JobProgress {
	progress := &JobProgress{
		JobID:             job.ID,
		Status:            job.Status,
		ProcessedEntities: job.ProcessedEntities,
		TotalEntities:     job.TotalEntities,
		CurrentLevel:      job.CurrentLevel,
	}

	if job.TotalEntities != nil && *job.TotalEntities > 0 {
		percent := int(math.Round(float64(job.ProcessedEntities) / float64(*job.TotalEntities) * 100))
		progress.PercentComplete = &percent
	}

	return progress
}
