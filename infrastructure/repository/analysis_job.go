package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const (
	analysisJobsTable   = "analysis_jobs"
	analysisJobsColumns = "id, organization_id, days, webhook_url, status, total_entities, processed_entities, current_level, analysis_run_id, error_message, stopped_reason, termination_reason, created_at, started_at, completed_at"
)

type AnalysisJobRepository interface {
	Create(job *domain.AnalysisJob) error
	GetByID(jobID string) (*domain.AnalysisJob, error)
	Start(jobID string, totalEntities int) (bool, error)
	UpdateProgress(jobID string, processed int, currentLevel string) error
	CompleteIfActive(jobID, analysisRunID string, stoppedReason, terminationReason *string) (bool, error)
	FailIfActive(jobID, errorMessage string) (bool, error)
	ListRecent(organizationID string, limit uint64) ([]*domain.AnalysisJob, error)
	GetLatestCompleted(organizationID string) (*domain.AnalysisJob, error)
	ListStaleRunning(startedBefore time.Time) ([]*domain.AnalysisJob, error)
}

type analysisJobRepository struct {
	conn *postgres.Connection
}

func NewAnalysisJobRepository(conn *postgres.Connection) AnalysisJobRepository {
	return &analysisJobRepository{
		conn: conn,
	}
}

func (r *analysisJobRepository) Create(job *domain.AnalysisJob) error {
	query, args, err := squirrel.
		Insert(analysisJobsTable).
		Columns("id", "organization_id", "days", "webhook_url", "status", "processed_entities", "created_at").
		Values(job.ID, job.OrganizationID, job.Days, job.WebhookURL, job.Status, 0, job.CreatedAt).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao inserir job de análise: %w", err)
	}

	return nil
}

func (r *analysisJobRepository) GetByID(jobID string) (*domain.AnalysisJob, error) {
	query, args, err := squirrel.
		Select(analysisJobsColumns).
		From(analysisJobsTable).
		Where(squirrel.Eq{"id": jobID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	job, err := r.scanJob(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear job: %w", err)
	}

	return job, nil
}

// Start move o job de pending para running; retorna false se o job
// já saiu do estado pending (transição idempotente)
func (r *analysisJobRepository) Start(jobID string, totalEntities int) (bool, error) {
	query, args, err := squirrel.
		Update(analysisJobsTable).
		Set("status", domain.JobStatusRunning).
		Set("total_entities", totalEntities).
		Set("started_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": jobID, "status": domain.JobStatusPending}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao iniciar job: %w", err)
	}

	return rowsAffected(result), nil
}

// UpdateProgress atualiza o contador de progresso; o GREATEST garante que
// o contador nunca regride sob intercalação concorrente
func (r *analysisJobRepository) UpdateProgress(jobID string, processed int, currentLevel string) error {
	query, args, err := squirrel.
		Update(analysisJobsTable).
		Set("processed_entities", squirrel.Expr("GREATEST(processed_entities, ?)", processed)).
		Set("current_level", currentLevel).
		Where(squirrel.Eq{"id": jobID, "status": domain.JobStatusRunning}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar progresso do job: %w", err)
	}

	return nil
}

// CompleteIfActive marca o job como completed apenas se ele ainda não atingiu
// um estado terminal; retorna false quando a transição já ocorreu
func (r *analysisJobRepository) CompleteIfActive(jobID, analysisRunID string, stoppedReason, terminationReason *string) (bool, error) {
	query, args, err := squirrel.
		Update(analysisJobsTable).
		Set("status", domain.JobStatusCompleted).
		Set("analysis_run_id", analysisRunID).
		Set("stopped_reason", stoppedReason).
		Set("termination_reason", terminationReason).
		Set("completed_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": jobID}).
		Where(squirrel.Eq{"status": []domain.JobStatus{domain.JobStatusPending, domain.JobStatusRunning}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao completar job: %w", err)
	}

	return rowsAffected(result), nil
}

// FailIfActive marca o job como failed apenas se ele ainda não atingiu um estado terminal
func (r *analysisJobRepository) FailIfActive(jobID, errorMessage string) (bool, error) {
	query, args, err := squirrel.
		Update(analysisJobsTable).
		Set("status", domain.JobStatusFailed).
		Set("error_message", errorMessage).
		Set("completed_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": jobID}).
		Where(squirrel.Eq{"status": []domain.JobStatus{domain.JobStatusPending, domain.JobStatusRunning}}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return false, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("erro ao falhar job: %w", err)
	}

	return rowsAffected(result), nil
}

func (r *analysisJobRepository) ListRecent(organizationID string, limit uint64) ([]*domain.AnalysisJob, error) {
	query, args, err := squirrel.
		Select(analysisJobsColumns).
		From(analysisJobsTable).
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("created_at DESC").
		Limit(limit).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.AnalysisJob, 0)
	for rows.Next() {
		job, err := r.scanJobRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear jobs: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return jobs, nil
}

func (r *analysisJobRepository) GetLatestCompleted(organizationID string) (*domain.AnalysisJob, error) {
	query, args, err := squirrel.
		Select(analysisJobsColumns).
		From(analysisJobsTable).
		Where(squirrel.Eq{"organization_id": organizationID, "status": domain.JobStatusCompleted}).
		OrderBy("completed_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	job, err := r.scanJob(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear job: %w", err)
	}

	return job, nil
}

// ListStaleRunning retorna jobs em execução iniciados antes do limite,
// candidatos à falha pela varredura de timeout
func (r *analysisJobRepository) ListStaleRunning(startedBefore time.Time) ([]*domain.AnalysisJob, error) {
	query, args, err := squirrel.
		Select(analysisJobsColumns).
		From(analysisJobsTable).
		Where(squirrel.Eq{"status": domain.JobStatusRunning}).
		Where(squirrel.Lt{"started_at": startedBefore}).
		OrderBy("started_at ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	jobs := make([]*domain.AnalysisJob, 0)
	for rows.Next() {
		job, err := r.scanJobRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear jobs: %w", err)
		}
		jobs = append(jobs, job)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return jobs, nil
}

func (r *analysisJobRepository) scanJob(row *sql.Row) (*domain.AnalysisJob, error) {
	job := &domain.AnalysisJob{}
	err := row.Scan(
		&job.ID,
		&job.OrganizationID,
		&job.Days,
		&job.WebhookURL,
		&job.Status,
		&job.TotalEntities,
		&job.ProcessedEntities,
		&job.CurrentLevel,
		&job.AnalysisRunID,
		&job.ErrorMessage,
		&job.StoppedReason,
		&job.TerminationReason,
		&job.CreatedAt,
		&job.StartedAt,
		&job.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func (r *analysisJobRepository) scanJobRows(rows *sql.Rows) (*domain.AnalysisJob, error) {
	job := &domain.AnalysisJob{}
	err := rows.Scan(
		&job.ID,
		&job.OrganizationID,
		&job.Days,
		&job.WebhookURL,
		&job.Status,
		&job.TotalEntities,
		&job.ProcessedEntities,
		&job.CurrentLevel,
		&job.AnalysisRunID,
		&job.ErrorMessage,
		&job.StoppedReason,
		&job.TerminationReason,
		&job.CreatedAt,
		&job.StartedAt,
		&job.CompletedAt,
	)
	if err != nil {
		return nil, err
	}
	return job, nil
}

func rowsAffected(result sql.Result) bool {
	affected, err := result.RowsAffected()
	if err != nil {
		return false
	}
	return affected > 0
}
