package prompting

import (
	"fmt"
	"sort"
	"strings"

	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const (
	NoMetricsPlaceholder   = "Sem métricas disponíveis para o período."
	NoChildrenPlaceholder  = "Sem resumos de entidades filhas disponíveis."
	MissingTemplateSummary = "Resumo indisponível: template de prompt não configurado para este nível."
)

// ChildSummary é a visão mínima de um resumo filho usada na montagem do
// contexto do nível pai
type ChildSummary struct {
	Platform string
	Name     string
	Summary  string
}

// FormatMetricsTable renderiza a série temporal como tabela markdown
// ordenada da data mais recente para a mais antiga
func FormatMetricsTable(metrics []domain.TimeseriesMetric) string {
	if len(metrics) == 0 {
		return NoMetricsPlaceholder
	}

	sorted := make([]domain.TimeseriesMetric, len(metrics))
	copy(sorted, metrics)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	var b strings.Builder
	b.WriteString("| Data | Investimento | Impressões | Cliques | CTR | Conversões | ROAS |\n")
	b.WriteString("|------|--------------|------------|---------|-----|------------|------|\n")

	for _, m := range sorted {
		b.WriteString(fmt.Sprintf("| %s | %s | %d | %d | %.2f%% | %d | %.2f |\n",
			m.Date.Format("2006-01-02"),
			FormatCents(m.SpendCents),
			m.Impressions,
			m.Clicks,
			m.CTR(),
			m.Conversions,
			m.ROAS(),
		))
	}

	return b.String()
}

// FormatChildSummaries concatena os resumos filhos com um cabeçalho por
// entidade, na ordem recebida
func FormatChildSummaries(children []ChildSummary) string {
	if len(children) == 0 {
		return NoChildrenPlaceholder
	}

	var b strings.Builder
	for i, child := range children {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("### [%s] %s\n%s\n", child.Platform, child.Name, child.Summary))
	}

	return b.String()
}

// FormatCents converte centavos para o valor monetário exibido nos prompts
func FormatCents(cents int64) string {
	return fmt.Sprintf("R$ %.2f", float64(cents)/100)
}
