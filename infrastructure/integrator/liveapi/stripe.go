package liveapi

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
)

const stripeAPIURL = "https://api.stripe.com/v1"

// stripeConnector consulta dados de receita. Campos de PII (email, nome,
// endereço) nunca saem daqui: são descartados ou substituídos por hash
type stripeConnector struct {
	baseURL string
}

func NewStripeConnector() Connector {
	return &stripeConnector{baseURL: stripeAPIURL}
}

func (c *stripeConnector) Platform() string {
	return "stripe"
}

func (c *stripeConnector) Fetch(ctx context.Context, accessToken, endpoint string, params map[string]any) (map[string]any, error) {
	switch endpoint {
	case "transactions":
		return c.transactions(ctx, accessToken, params)
	case "subscriptions":
		return c.subscriptions(ctx, accessToken)
	case "customer_details":
		return c.customerDetails(ctx, accessToken)
	case "refunds":
		return c.refunds(ctx, accessToken)
	case "products":
		return c.products(ctx, accessToken)
	default:
		return nil, ErrEndpointNotSupported
	}
}

func (c *stripeConnector) get(ctx context.Context, accessToken, path string, query url.Values, out any) error {
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

type stripeCharge struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Status   string `json:"status"`
	Created  int64  `json:"created"`
	Customer string `json:"customer"`
}

func (c *stripeConnector) transactions(ctx context.Context, accessToken string, params map[string]any) (map[string]any, error) {
	query := url.Values{}
	query.Set("limit", stringParam(params, "limit", "25"))

	var response struct {
		Data []stripeCharge `json:"data"`
	}
	if err := c.get(ctx, accessToken, "/charges", query, &response); err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(response.Data))
	for _, charge := range response.Data {
		rows = append(rows, map[string]any{
			"id":       charge.ID,
			"amount":   formatMinorUnits(charge.Amount, charge.Currency),
			"status":   charge.Status,
			"customer": hashIdentifier(charge.Customer),
		})
	}

	return map[string]any{"endpoint": "transactions", "rows": rows}, nil
}

func (c *stripeConnector) subscriptions(ctx context.Context, accessToken string) (map[string]any, error) {
	var response struct {
		Data []struct {
			ID       string `json:"id"`
			Status   string `json:"status"`
			Customer string `json:"customer"`
			Items    struct {
				Data []struct {
					Price struct {
						UnitAmount int64  `json:"unit_amount"`
						Currency   string `json:"currency"`
						Recurring  struct {
							Interval string `json:"interval"`
						} `json:"recurring"`
					} `json:"price"`
				} `json:"data"`
			} `json:"items"`
		} `json:"data"`
	}
	if err := c.get(ctx, accessToken, "/subscriptions", url.Values{}, &response); err != nil {
		return nil, err
	}

	active := 0
	rows := make([]map[string]any, 0, len(response.Data))
	for _, sub := range response.Data {
		if sub.Status == "active" {
			active++
		}
		row := map[string]any{
			"id":       sub.ID,
			"status":   sub.Status,
			"customer": hashIdentifier(sub.Customer),
		}
		if len(sub.Items.Data) > 0 {
			price := sub.Items.Data[0].Price
			row["amount"] = formatMinorUnits(price.UnitAmount, price.Currency)
			row["interval"] = price.Recurring.Interval
		}
		rows = append(rows, row)
	}

	return map[string]any{
		"endpoint":             "subscriptions",
		"active_subscriptions": active,
		"rows":                 rows,
	}, nil
}

// customerDetails devolve apenas agregados. Email, nome e endereço são
// removidos antes de qualquer campo chegar ao contexto do modelo
func (c *stripeConnector) customerDetails(ctx context.Context, accessToken string) (map[string]any, error) {
	var response struct {
		Data []struct {
			ID         string `json:"id"`
			Created    int64  `json:"created"`
			Currency   string `json:"currency"`
			Delinquent bool   `json:"delinquent"`
		} `json:"data"`
	}
	query := url.Values{}
	query.Set("limit", "100")
	if err := c.get(ctx, accessToken, "/customers", query, &response); err != nil {
		return nil, err
	}

	delinquent := 0
	rows := make([]map[string]any, 0, len(response.Data))
	for _, customer := range response.Data {
		if customer.Delinquent {
			delinquent++
		}
		rows = append(rows, map[string]any{
			"customer": hashIdentifier(customer.ID),
			"currency": customer.Currency,
		})
	}

	return map[string]any{
		"endpoint":             "customer_details",
		"total_customers":      len(response.Data),
		"delinquent_customers": delinquent,
		"rows":                 rows,
	}, nil
}

func (c *stripeConnector) refunds(ctx context.Context, accessToken string) (map[string]any, error) {
	var response struct {
		Data []struct {
			ID       string `json:"id"`
			Amount   int64  `json:"amount"`
			Currency string `json:"currency"`
			Status   string `json:"status"`
			Reason   string `json:"reason"`
		} `json:"data"`
	}
	if err := c.get(ctx, accessToken, "/refunds", url.Values{}, &response); err != nil {
		return nil, err
	}

	var totalRefunded int64
	rows := make([]map[string]any, 0, len(response.Data))
	for _, refund := range response.Data {
		totalRefunded += refund.Amount
		rows = append(rows, map[string]any{
			"id":     refund.ID,
			"amount": formatMinorUnits(refund.Amount, refund.Currency),
			"status": refund.Status,
			"reason": refund.Reason,
		})
	}

	result := map[string]any{"endpoint": "refunds", "rows": rows}
	if len(response.Data) > 0 {
		result["total_refunded"] = formatMinorUnits(totalRefunded, response.Data[0].Currency)
	}
	return result, nil
}

func (c *stripeConnector) products(ctx context.Context, accessToken string) (map[string]any, error) {
	var response struct {
		Data []struct {
			ID     string `json:"id"`
			Name   string `json:"name"`
			Active bool   `json:"active"`
		} `json:"data"`
	}
	if err := c.get(ctx, accessToken, "/products", url.Values{}, &response); err != nil {
		return nil, err
	}

	rows := make([]map[string]any, 0, len(response.Data))
	for _, product := range response.Data {
		rows = append(rows, map[string]any{
			"id":     product.ID,
			"name":   product.Name,
			"active": product.Active,
		})
	}

	return map[string]any{"endpoint": "products", "rows": rows}, nil
}
