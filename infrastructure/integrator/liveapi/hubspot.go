package liveapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const hubspotAPIURL = "https://api.hubapi.com"

// hubspotConnector consulta o CRM. Contatos são reduzidos a hashes e
// contagens de atividade; nomes e emails nunca entram no resultado
type hubspotConnector struct {
	baseURL string
}

func NewHubspotConnector() Connector {
	return &hubspotConnector{baseURL: hubspotAPIURL}
}

func (c *hubspotConnector) Platform() string {
	return "hubspot"
}

func (c *hubspotConnector) Fetch(ctx context.Context, accessToken, endpoint string, params map[string]any) (map[string]any, error) {
	switch endpoint {
	case "deal_pipeline":
		return c.dealPipeline(ctx, accessToken)
	case "contact_activity":
		return c.contactActivity(ctx, accessToken)
	case "stage_history":
		return c.stageHistory(ctx, accessToken)
	default:
		return nil, ErrEndpointNotSupported
	}
}

func (c *hubspotConnector) get(ctx context.Context, accessToken, path string, query url.Values, out any) error {
	requestURL := c.baseURL + path
	if len(query) > 0 {
		requestURL += "?" + query.Encode()
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		return fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	return doJSON(ctx, req, out)
}

type hubspotDeal struct {
	ID         string `json:"id"`
	Properties struct {
		DealName  string `json:"dealname"`
		Amount    string `json:"amount"`
		DealStage string `json:"dealstage"`
		CloseDate string `json:"closedate"`
	} `json:"properties"`
}

func (c *hubspotConnector) dealPipeline(ctx context.Context, accessToken string) (map[string]any, error) {
	query := url.Values{}
	query.Set("limit", "100")
	query.Set("properties", "dealname,amount,dealstage,closedate")

	var response struct {
		Results []hubspotDeal `json:"results"`
	}
	if err := c.get(ctx, accessToken, "/crm/v3/objects/deals", query, &response); err != nil {
		return nil, err
	}

	byStage := make(map[string]int)
	rows := make([]map[string]any, 0, len(response.Results))
	for _, deal := range response.Results {
		byStage[deal.Properties.DealStage]++
		rows = append(rows, map[string]any{
			"deal_name":  deal.Properties.DealName,
			"amount":     deal.Properties.Amount,
			"stage":      deal.Properties.DealStage,
			"close_date": deal.Properties.CloseDate,
		})
	}

	return map[string]any{
		"endpoint":       "deal_pipeline",
		"deals_by_stage": byStage,
		"rows":           rows,
	}, nil
}

func (c *hubspotConnector) contactActivity(ctx context.Context, accessToken string) (map[string]any, error) {
	query := url.Values{}
	query.Set("limit", "100")
	query.Set("properties", "lifecyclestage,lastmodifieddate")

	var response struct {
		Results []struct {
			ID         string `json:"id"`
			Properties struct {
				LifecycleStage   string `json:"lifecyclestage"`
				LastModifiedDate string `json:"lastmodifieddate"`
			} `json:"properties"`
		} `json:"results"`
	}
	if err := c.get(ctx, accessToken, "/crm/v3/objects/contacts", query, &response); err != nil {
		return nil, err
	}

	byLifecycle := make(map[string]int)
	rows := make([]map[string]any, 0, len(response.Results))
	for _, contact := range response.Results {
		byLifecycle[contact.Properties.LifecycleStage]++
		rows = append(rows, map[string]any{
			"contact":         hashIdentifier(contact.ID),
			"lifecycle_stage": contact.Properties.LifecycleStage,
			"last_activity":   contact.Properties.LastModifiedDate,
		})
	}

	return map[string]any{
		"endpoint":               "contact_activity",
		"contacts_by_lifecycle":  byLifecycle,
		"rows":                   rows,
	}, nil
}

func (c *hubspotConnector) stageHistory(ctx context.Context, accessToken string) (map[string]any, error) {
	query := url.Values{}
	query.Set("limit", "100")
	query.Set("properties", "dealname,dealstage,hs_date_entered_current_stage")

	var response struct {
		Results []struct {
			Properties struct {
				DealName            string `json:"dealname"`
				DealStage           string `json:"dealstage"`
				DateEnteredStage    string `json:"hs_date_entered_current_stage"`
			} `json:"properties"`
		} `json:"results"`
	}
	if err := c.get(ctx, accessToken, "/crm/v3/objects/deals", query, &response); err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(response.Results))
	for _, deal := range response.Results {
		rows = append(rows, map[string]any{
			"deal_name":      deal.Properties.DealName,
			"stage":          deal.Properties.DealStage,
			"entered_stage":  deal.Properties.DateEnteredStage,
		})
	}

	return map[string]any{"endpoint": "stage_history", "rows": rows}, nil
}
