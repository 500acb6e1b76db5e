package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const recommendationsTable = "recommendations"

type RecommendationRepository interface {
	SaveAll(recommendations []*domain.Recommendation) error
	ListByRun(analysisRunID string) ([]*domain.Recommendation, error)
}

type recommendationRepository struct {
	conn *postgres.Connection
}

func NewRecommendationRepository(conn *postgres.Connection) RecommendationRepository {
	return &recommendationRepository{
		conn: conn,
	}
}

// SaveAll grava as recomendações de uma execução; o conflito em
// (analysis_run_id, tool, platform, entity_type, entity_id) mantém a
// primeira emissão (deduplicação para o fluxo de aprovação)
func (r *recommendationRepository) SaveAll(recommendations []*domain.Recommendation) error {
	if len(recommendations) == 0 {
		return nil
	}

	builder := squirrel.StatementBuilder.
		Insert(recommendationsTable).
		Columns(
			"organization_id", "analysis_run_id", "tool", "platform",
			"entity_type", "entity_id", "title", "description",
			"confidence", "estimated_impact", "supporting_data",
		).
		Suffix("ON CONFLICT (analysis_run_id, tool, platform, entity_type, entity_id) DO NOTHING").
		PlaceholderFormat(squirrel.Dollar)

	for _, rec := range recommendations {
		builder = builder.Values(
			rec.OrganizationID,
			rec.AnalysisRunID,
			rec.Tool,
			rec.Platform,
			rec.EntityType,
			rec.EntityID,
			rec.Title,
			rec.Description,
			rec.Confidence,
			rec.EstimatedImpact,
			[]byte(rec.SupportingData),
		)
	}

	query, args, err := builder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			return fmt.Errorf("erro no banco de dados: %w (código: %s)", pqErr, pqErr.Code)
		}
		return fmt.Errorf("erro ao gravar recomendações: %w", err)
	}

	return nil
}

func (r *recommendationRepository) ListByRun(analysisRunID string) ([]*domain.Recommendation, error) {
	query, args, err := squirrel.
		Select("id, organization_id, analysis_run_id, tool, platform, entity_type, entity_id, title, description, confidence, estimated_impact, supporting_data, created_at").
		From(recommendationsTable).
		Where(squirrel.Eq{"analysis_run_id": analysisRunID}).
		OrderBy("confidence DESC", "id ASC").
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

	recommendations := make([]*domain.Recommendation, 0)
	for rows.Next() {
		rec := &domain.Recommendation{}
		var supporting []byte

		err := rows.Scan(
			&rec.ID,
			&rec.OrganizationID,
			&rec.AnalysisRunID,
			&rec.Tool,
			&rec.Platform,
			&rec.EntityType,
			&rec.EntityID,
			&rec.Title,
			&rec.Description,
			&rec.Confidence,
			&rec.EstimatedImpact,
			&supporting,
			&rec.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear recomendações: %w", err)
		}

		rec.SupportingData = supporting
		recommendations = append(recommendations, rec)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return recommendations, nil
}
