package domain

import "time"

// TimeseriesMetric representa um dia de performance de uma entidade
type TimeseriesMetric struct {
	Date                 time.Time `json:"date"`
	Impressions          int64     `json:"impressions"`
	Clicks               int64     `json:"clicks"`
	SpendCents           int64     `json:"spend_cents"`
	Conversions          int64     `json:"conversions"`
	ConversionValueCents int64     `json:"conversion_value_cents"`
}

// CTR calcula a taxa de cliques com proteção contra divisão por zero
func (m TimeseriesMetric) CTR() float64 {
	if m.Impressions == 0 {
		return 0
	}
	return float64(m.Clicks) / float64(m.Impressions) * 100
}

// ROAS calcula o retorno sobre o investimento em anúncios com proteção contra divisão por zero
func (m TimeseriesMetric) ROAS() float64 {
	if m.SpendCents == 0 {
		return 0
	}
	return float64(m.ConversionValueCents) / float64(m.SpendCents)
}

// MetricTotals agrega as métricas de um período completo
type MetricTotals struct {
	Impressions          int64 `json:"impressions"`
	Clicks               int64 `json:"clicks"`
	SpendCents           int64 `json:"spend_cents"`
	Conversions          int64 `json:"conversions"`
	ConversionValueCents int64 `json:"conversion_value_cents"`
}

// SumMetrics soma uma série diária em totais do período
func SumMetrics(metrics []TimeseriesMetric) MetricTotals {
	totals := MetricTotals{}
	for _, m := range metrics {
		totals.Impressions += m.Impressions
		totals.Clicks += m.Clicks
		totals.SpendCents += m.SpendCents
		totals.Conversions += m.Conversions
		totals.ConversionValueCents += m.ConversionValueCents
	}
	return totals
}
