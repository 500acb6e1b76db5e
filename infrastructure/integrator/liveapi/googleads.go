package liveapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

const googleAdsURL = "https://googleads.googleapis.com/v18"

// googleAdsConnector consulta relatórios via Google Ads Query Language.
// A query é montada internamente por endpoint; o modelo nunca injeta GAQL
type googleAdsConnector struct {
	baseURL string
}

func NewGoogleAdsConnector() Connector {
	return &googleAdsConnector{baseURL: googleAdsURL}
}

func (c *googleAdsConnector) Platform() string {
	return "google_ads"
}

type googleAdsSearchResponse struct {
	Results []struct {
		Campaign struct {
			Name string `json:"name"`
		} `json:"campaign"`
		AdGroupCriterion struct {
			Keyword struct {
				Text string `json:"text"`
			} `json:"keyword"`
		} `json:"adGroupCriterion"`
		Segments struct {
			Device           string `json:"device"`
			GeoTargetCountry string `json:"geoTargetCountry"`
		} `json:"segments"`
		Metrics struct {
			Impressions     string `json:"impressions"`
			Clicks          string `json:"clicks"`
			CostMicros      string `json:"costMicros"`
			Conversions     float64 `json:"conversions"`
			ConversionsValue float64 `json:"conversionsValue"`
		} `json:"metrics"`
	} `json:"results"`
}

func (c *googleAdsConnector) Fetch(ctx context.Context, accessToken, endpoint string, params map[string]any) (map[string]any, error) {
	since, until := dateRangeParams(params, 7)

	var query string
	switch endpoint {
	case "campaign_performance":
		query = fmt.Sprintf(
			"SELECT campaign.name, metrics.impressions, metrics.clicks, metrics.cost_micros, metrics.conversions, metrics.conversions_value FROM campaign WHERE segments.date BETWEEN '%s' AND '%s'",
			since, until,
		)
	case "keyword_performance":
		query = fmt.Sprintf(
			"SELECT campaign.name, ad_group_criterion.keyword.text, metrics.impressions, metrics.clicks, metrics.cost_micros FROM keyword_view WHERE segments.date BETWEEN '%s' AND '%s'",
			since, until,
		)
	case "geo_performance":
		query = fmt.Sprintf(
			"SELECT campaign.name, segments.geo_target_country, metrics.impressions, metrics.clicks, metrics.cost_micros FROM geographic_view WHERE segments.date BETWEEN '%s' AND '%s'",
			since, until,
		)
	case "device_performance":
		query = fmt.Sprintf(
			"SELECT campaign.name, segments.device, metrics.impressions, metrics.clicks, metrics.cost_micros FROM campaign WHERE segments.date BETWEEN '%s' AND '%s'",
			since, until,
		)
	default:
		return nil, ErrEndpointNotSupported
	}

	customerID := stringParam(params, "customer_id", "")
	if customerID == "" {
		return nil, fmt.Errorf("parâmetro customer_id é obrigatório")
	}

	body, err := jsonAPI.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a query: %w", err)
	}

	requestURL := fmt.Sprintf("%s/customers/%s/googleAds:search", c.baseURL, customerID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")

	var response googleAdsSearchResponse
	if err := doJSON(ctx, req, &response); err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(response.Results))
	for _, result := range response.Results {
		row := map[string]any{
			"campaign_name": result.Campaign.Name,
			"impressions":   result.Metrics.Impressions,
			"clicks":        result.Metrics.Clicks,
			"cost":          formatMicros(result.Metrics.CostMicros),
		}
		if result.AdGroupCriterion.Keyword.Text != "" {
			row["keyword"] = result.AdGroupCriterion.Keyword.Text
		}
		if result.Segments.Device != "" {
			row["device"] = result.Segments.Device
		}
		if result.Segments.GeoTargetCountry != "" {
			row["country"] = result.Segments.GeoTargetCountry
		}
		if result.Metrics.Conversions > 0 {
			row["conversions"] = result.Metrics.Conversions
			row["conversions_value"] = fmt.Sprintf("USD %.2f", result.Metrics.ConversionsValue)
		}
		rows = append(rows, row)
	}

	return map[string]any{
		"endpoint": endpoint,
		"since":    since,
		"until":    until,
		"rows":     rows,
	}, nil
}

// formatMicros converte custo em micros para string de exibição
func formatMicros(raw string) string {
	var micros int64
	if _, err := fmt.Sscanf(raw, "%d", &micros); err != nil {
		return raw
	}
	return fmt.Sprintf("USD %.2f", float64(micros)/1_000_000)
}
