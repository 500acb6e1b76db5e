package repository

import (
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const entityMetricsTable = "entity_metrics"

type EntityMetricRepository interface {
	GetByEntityAndRange(platform, entityID string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error)
	GetAggregatedByEntities(platform string, entityIDs []string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error)
}

type entityMetricRepository struct {
	conn *postgres.Connection
}

func NewEntityMetricRepository(conn *postgres.Connection) EntityMetricRepository {
	return &entityMetricRepository{
		conn: conn,
	}
}

func (r *entityMetricRepository) GetByEntityAndRange(platform, entityID string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error) {
	query, args, err := squirrel.
		Select("date, impressions, clicks, spend_cents, conversions, conversion_value_cents").
		From(entityMetricsTable).
		Where(squirrel.Eq{"platform": platform, "entity_id": entityID}).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMetrics(query, args)
}

// GetAggregatedByEntities soma as métricas diárias de um conjunto de filhos,
// agrupadas por data, para alimentar o resumo da entidade pai
func (r *entityMetricRepository) GetAggregatedByEntities(platform string, entityIDs []string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error) {
	if len(entityIDs) == 0 {
		return []domain.TimeseriesMetric{}, nil
	}

	query, args, err := squirrel.
		Select(
			"date",
			"SUM(impressions) AS impressions",
			"SUM(clicks) AS clicks",
			"SUM(spend_cents) AS spend_cents",
			"SUM(conversions) AS conversions",
			"SUM(conversion_value_cents) AS conversion_value_cents",
		).
		From(entityMetricsTable).
		Where(squirrel.Eq{"platform": platform, "entity_id": entityIDs}).
		Where(squirrel.GtOrEq{"date": startDate.Format("2006-01-02")}).
		Where(squirrel.LtOrEq{"date": endDate.Format("2006-01-02")}).
		GroupBy("date").
		OrderBy("date ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	return r.queryMetrics(query, args)
}

func (r *entityMetricRepository) queryMetrics(query string, args []interface{}) ([]domain.TimeseriesMetric, error) {
	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	metrics := make([]domain.TimeseriesMetric, 0)
	for rows.Next() {
		metric := domain.TimeseriesMetric{}
		if err := rows.Scan(&metric.Date, &metric.Impressions, &metric.Clicks, &metric.SpendCents, &metric.Conversions, &metric.ConversionValueCents); err != nil {
			return nil, fmt.Errorf("erro ao escanear métricas: %w", err)
		}
		metrics = append(metrics, metric)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return metrics, nil
}
