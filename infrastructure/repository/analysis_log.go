package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const analysisCallLogsTable = "analysis_call_logs"

// AnalysisLogRepository é o destino de auditoria das chamadas de geração.
// Append-only: este serviço nunca lê as linhas gravadas.
type AnalysisLogRepository interface {
	LogCall(entry *domain.AnalysisCallLog) error
}

type analysisLogRepository struct {
	conn *postgres.Connection
}

func NewAnalysisLogRepository(conn *postgres.Connection) AnalysisLogRepository {
	return &analysisLogRepository{
		conn: conn,
	}
}

func (r *analysisLogRepository) LogCall(entry *domain.AnalysisCallLog) error {
	query, args, err := squirrel.
		Insert(analysisCallLogsTable).
		Columns(
			"organization_id", "level", "platform", "entity_id", "entity_name",
			"provider", "model", "input_tokens", "output_tokens", "latency_ms",
			"prompt", "response", "analysis_run_id",
		).
		Values(
			entry.OrganizationID,
			entry.Level,
			entry.Platform,
			entry.EntityID,
			entry.EntityName,
			entry.Provider,
			entry.Model,
			entry.InputTokens,
			entry.OutputTokens,
			entry.LatencyMs,
			entry.Prompt,
			entry.Response,
			entry.AnalysisRunID,
		).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao gravar log de chamada: %w", err)
	}

	return nil
}
