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
	analysisSummariesTable   = "analysis_summaries"
	analysisSummariesColumns = "id, organization_id, level, platform, entity_id, entity_name, summary, metrics_snapshot, days, analysis_run_id, expires_at, created_at"
)

type AnalysisSummaryRepository interface {
	Save(summary *domain.AnalysisSummary) error
	GetByRun(analysisRunID string) ([]*domain.AnalysisSummary, error)
	GetLatestCrossPlatform(organizationID string) (*domain.AnalysisSummary, error)
	GetLatestForEntity(organizationID string, level domain.EntityLevel, entityID string) (*domain.AnalysisSummary, error)
	DeleteExpired() (int64, error)
}

type analysisSummaryRepository struct {
	conn *postgres.Connection
}

func NewAnalysisSummaryRepository(conn *postgres.Connection) AnalysisSummaryRepository {
	return &analysisSummaryRepository{
		conn: conn,
	}
}

func (r *analysisSummaryRepository) Save(summary *domain.AnalysisSummary) error {
	query, args, err := squirrel.
		Insert(analysisSummariesTable).
		Columns("organization_id", "level", "platform", "entity_id", "entity_name", "summary", "metrics_snapshot", "days", "analysis_run_id", "expires_at").
		Values(
			summary.OrganizationID,
			summary.Level,
			summary.Platform,
			summary.EntityID,
			summary.EntityName,
			summary.Summary,
			[]byte(summary.MetricsSnapshot),
			summary.Days,
			summary.AnalysisRunID,
			summary.ExpiresAt,
		).
		Suffix("RETURNING id, created_at").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	if err := row.Scan(&summary.ID, &summary.CreatedAt); err != nil {
		return fmt.Errorf("erro ao inserir resumo de análise: %w", err)
	}

	return nil
}

func (r *analysisSummaryRepository) GetByRun(analysisRunID string) ([]*domain.AnalysisSummary, error) {
	query, args, err := squirrel.
		Select(analysisSummariesColumns).
		From(analysisSummariesTable).
		Where(squirrel.Eq{"analysis_run_id": analysisRunID}).
		OrderBy("level ASC", "entity_id ASC").
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

	summaries := make([]*domain.AnalysisSummary, 0)
	for rows.Next() {
		summary, err := r.scanSummaryRows(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear resumos: %w", err)
		}
		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return summaries, nil
}

// GetLatestCrossPlatform localiza a execução completa mais recente pela
// linha do resumo executivo cross-platform
func (r *analysisSummaryRepository) GetLatestCrossPlatform(organizationID string) (*domain.AnalysisSummary, error) {
	query, args, err := squirrel.
		Select(analysisSummariesColumns).
		From(analysisSummariesTable).
		Where(squirrel.Eq{"organization_id": organizationID, "level": domain.LevelCrossPlatform}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary, err := r.scanSummary(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo: %w", err)
	}

	return summary, nil
}

func (r *analysisSummaryRepository) GetLatestForEntity(organizationID string, level domain.EntityLevel, entityID string) (*domain.AnalysisSummary, error) {
	query, args, err := squirrel.
		Select(analysisSummariesColumns).
		From(analysisSummariesTable).
		Where(squirrel.Eq{"organization_id": organizationID, "level": level, "entity_id": entityID}).
		OrderBy("created_at DESC").
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	summary, err := r.scanSummary(r.conn.QueryRow(query, args...))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear resumo: %w", err)
	}

	return summary, nil
}

// DeleteExpired remove resumos que passaram do expires_at
func (r *analysisSummaryRepository) DeleteExpired() (int64, error) {
	query, args, err := squirrel.
		Delete(analysisSummariesTable).
		Where(squirrel.Lt{"expires_at": time.Now().UTC()}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return 0, fmt.Errorf("erro ao construir a query: %w", err)
	}

	result, err := r.conn.Exec(query, args...)
	if err != nil {
		return 0, fmt.Errorf("erro ao executar a query: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("erro ao obter número de linhas afetadas: %w", err)
	}

	return rowsAffected, nil
}

func (r *analysisSummaryRepository) scanSummary(row *sql.Row) (*domain.AnalysisSummary, error) {
	summary := &domain.AnalysisSummary{}
	var snapshot []byte

	err := row.Scan(
		&summary.ID,
		&summary.OrganizationID,
		&summary.Level,
		&summary.Platform,
		&summary.EntityID,
		&summary.EntityName,
		&summary.Summary,
		&snapshot,
		&summary.Days,
		&summary.AnalysisRunID,
		&summary.ExpiresAt,
		&summary.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	summary.MetricsSnapshot = snapshot
	return summary, nil
}

func (r *analysisSummaryRepository) scanSummaryRows(rows *sql.Rows) (*domain.AnalysisSummary, error) {
	summary := &domain.AnalysisSummary{}
	var snapshot []byte

	err := rows.Scan(
		&summary.ID,
		&summary.OrganizationID,
		&summary.Level,
		&summary.Platform,
		&summary.EntityID,
		&summary.EntityName,
		&summary.Summary,
		&snapshot,
		&summary.Days,
		&summary.AnalysisRunID,
		&summary.ExpiresAt,
		&summary.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	summary.MetricsSnapshot = snapshot
	return summary, nil
}
