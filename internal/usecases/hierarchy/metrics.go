package hierarchy

import (
	"fmt"
	"time"

	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

// MetricsSource fornece as séries temporais de performance consumidas pelo
// analisador: métricas próprias nos níveis folha e agregadas nos níveis pai
type MetricsSource interface {
	FetchMetrics(platform, entityID string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error)
	FetchAggregatedMetrics(platform string, childIDs []string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error)
}

type metricsSource struct {
	metricRepo repository.EntityMetricRepository
}

func NewMetricsSource(metricRepo repository.EntityMetricRepository) MetricsSource {
	return &metricsSource{metricRepo: metricRepo}
}

func (s *metricsSource) FetchMetrics(platform, entityID string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error) {
	metrics, err := s.metricRepo.GetByEntityAndRange(platform, entityID, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar as métricas da entidade %s: %w", entityID, err)
	}
	return metrics, nil
}

func (s *metricsSource) FetchAggregatedMetrics(platform string, childIDs []string, startDate, endDate time.Time) ([]domain.TimeseriesMetric, error) {
	metrics, err := s.metricRepo.GetAggregatedByEntities(platform, childIDs, startDate, endDate)
	if err != nil {
		return nil, fmt.Errorf("erro ao agregar as métricas das entidades filhas: %w", err)
	}
	return metrics, nil
}
