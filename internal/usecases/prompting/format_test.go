package prompting

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

func TestFormatMetricsTable(t *testing.T) {
	day := func(d int) time.Time {
		return time.Date(2026, 8, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name     string
		metrics  []domain.TimeseriesMetric
		validate func(t *testing.T, table string)
	}{
		{
			name:    "Série vazia deve retornar o placeholder",
			metrics: nil,
			validate: func(t *testing.T, table string) {
				assert.Equal(t, NoMetricsPlaceholder, table)
			},
		},
		{
			name: "Linhas devem sair da data mais recente para a mais antiga",
			metrics: []domain.TimeseriesMetric{
				{Date: day(1), Impressions: 100, Clicks: 10, SpendCents: 5000},
				{Date: day(3), Impressions: 300, Clicks: 30, SpendCents: 15000},
				{Date: day(2), Impressions: 200, Clicks: 20, SpendCents: 10000},
			},
			validate: func(t *testing.T, table string) {
				first := strings.Index(table, "2026-08-03")
				second := strings.Index(table, "2026-08-02")
				third := strings.Index(table, "2026-08-01")
				assert.True(t, first < second && second < third, "datas fora de ordem: %s", table)
			},
		},
		{
			name: "Ordenação não deve alterar a série original",
			metrics: []domain.TimeseriesMetric{
				{Date: day(1)},
				{Date: day(2)},
			},
			validate: func(t *testing.T, table string) {
				assert.Contains(t, table, "2026-08-02")
			},
		},
		{
			name: "Dia sem impressões nem investimento deve renderizar CTR e ROAS zerados",
			metrics: []domain.TimeseriesMetric{
				{Date: day(1), Impressions: 0, Clicks: 0, SpendCents: 0, ConversionValueCents: 1000},
			},
			validate: func(t *testing.T, table string) {
				assert.Contains(t, table, "| 0.00% |")
				assert.Contains(t, table, "| 0.00 |")
			},
		},
		{
			name: "CTR e ROAS devem ser calculados por linha",
			metrics: []domain.TimeseriesMetric{
				{Date: day(1), Impressions: 1000, Clicks: 25, SpendCents: 10000, Conversions: 4, ConversionValueCents: 35000},
			},
			validate: func(t *testing.T, table string) {
				assert.Contains(t, table, "2.50%")
				assert.Contains(t, table, "3.50")
				assert.Contains(t, table, "R$ 100.00")
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := make([]domain.TimeseriesMetric, len(tt.metrics))
			copy(original, tt.metrics)

			table := FormatMetricsTable(tt.metrics)
			tt.validate(t, table)

			assert.Equal(t, original, tt.metrics, "a série original não deve ser reordenada")
		})
	}
}

func TestFormatChildSummaries(t *testing.T) {
	t.Run("Sem filhos deve retornar o placeholder", func(t *testing.T) {
		assert.Equal(t, NoChildrenPlaceholder, FormatChildSummaries(nil))
	})

	t.Run("Cada filho deve ter um cabeçalho com plataforma e nome", func(t *testing.T) {
		result := FormatChildSummaries([]ChildSummary{
			{Platform: "meta", Name: "Campanha A", Summary: "Resumo A"},
			{Platform: "google_ads", Name: "Campanha B", Summary: "Resumo B"},
		})

		assert.Contains(t, result, "### [meta] Campanha A\nResumo A")
		assert.Contains(t, result, "### [google_ads] Campanha B\nResumo B")
		assert.True(t, strings.Index(result, "Campanha A") < strings.Index(result, "Campanha B"))
	})
}

func TestFormatCents(t *testing.T) {
	assert.Equal(t, "R$ 0.00", FormatCents(0))
	assert.Equal(t, "R$ 123.45", FormatCents(12345))
	assert.Equal(t, "R$ 1000.00", FormatCents(100000))
}
