package liveapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
)

const metaGraphURL = "https://graph.facebook.com/v21.0"

// metaConnector consulta insights do Graph API do Meta Ads. Cada endpoint
// corresponde a um breakdown de performance somente leitura
type metaConnector struct {
	baseURL string
}

func NewMetaConnector() Connector {
	return &metaConnector{baseURL: metaGraphURL}
}

func (c *metaConnector) Platform() string {
	return "meta"
}

type metaInsightRow struct {
	CampaignName string `json:"campaign_name"`
	Spend        string `json:"spend"`
	Impressions  string `json:"impressions"`
	Clicks       string `json:"clicks"`
	CTR          string `json:"ctr"`
	Age          string `json:"age"`
	Gender       string `json:"gender"`
	Country      string `json:"country"`
	Region       string `json:"region"`
	DevicePlatform  string `json:"device_platform"`
	PublisherPlatform string `json:"publisher_platform"`
}

type metaInsightsResponse struct {
	Data []metaInsightRow `json:"data"`
}

func (c *metaConnector) Fetch(ctx context.Context, accessToken, endpoint string, params map[string]any) (map[string]any, error) {
	var breakdowns string
	switch endpoint {
	case "campaign_performance":
		breakdowns = ""
	case "audience_performance":
		breakdowns = "age,gender"
	case "geo_performance":
		breakdowns = "country,region"
	case "device_performance":
		breakdowns = "device_platform"
	case "placement_performance":
		breakdowns = "publisher_platform"
	default:
		return nil, ErrEndpointNotSupported
	}

	accountID := stringParam(params, "account_id", "")
	if accountID == "" {
		return nil, fmt.Errorf("parâmetro account_id é obrigatório")
	}

	since, until := dateRangeParams(params, 7)

	query := url.Values{}
	query.Set("level", "campaign")
	query.Set("fields", "campaign_name,spend,impressions,clicks,ctr")
	query.Set("time_range", fmt.Sprintf("{\"since\":\"%s\",\"until\":\"%s\"}", since, until))
	query.Set("access_token", accessToken)
	if breakdowns != "" {
		query.Set("breakdowns", breakdowns)
	}

	requestURL := fmt.Sprintf("%s/act_%s/insights?%s", c.baseURL, accountID, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	var response metaInsightsResponse
	if err := doJSON(ctx, req, &response); err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(response.Data))
	for _, row := range response.Data {
		sanitized := map[string]any{
			"campaign_name": row.CampaignName,
			"spend":         formatSpend(row.Spend),
			"impressions":   row.Impressions,
			"clicks":        row.Clicks,
			"ctr":           row.CTR,
		}
		if row.Age != "" {
			sanitized["age"] = row.Age
		}
		if row.Gender != "" {
			sanitized["gender"] = row.Gender
		}
		if row.Country != "" {
			sanitized["country"] = row.Country
		}
		if row.Region != "" {
			sanitized["region"] = row.Region
		}
		if row.DevicePlatform != "" {
			sanitized["device"] = row.DevicePlatform
		}
		if row.PublisherPlatform != "" {
			sanitized["placement"] = row.PublisherPlatform
		}
		rows = append(rows, sanitized)
	}

	return map[string]any{
		"endpoint": endpoint,
		"since":    since,
		"until":    until,
		"rows":     rows,
	}, nil
}

// formatSpend converte o gasto textual do Graph API em string de exibição
func formatSpend(raw string) string {
	value, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return raw
	}
	return fmt.Sprintf("USD %.2f", value)
}
