package liveapi

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
)

const jobberGraphQLURL = "https://api.getjobber.com/api/graphql"

// jobberConnector consulta a API GraphQL do Jobber. As queries são fixas
// por endpoint e clientes aparecem apenas como hash
type jobberConnector struct {
	graphqlURL string
}

func NewJobberConnector() Connector {
	return &jobberConnector{graphqlURL: jobberGraphQLURL}
}

func (c *jobberConnector) Platform() string {
	return "jobber"
}

const (
	jobberJobsQuery = `query { jobs(first: 50) { nodes { id title jobStatus total client { id } } } }`

	jobberClientsQuery = `query { clients(first: 50) { nodes { id isCompany createdAt } } }`

	jobberQuotesQuery = `query { quotes(first: 50) { nodes { id quoteNumber quoteStatus amounts { total } client { id } } } }`
)

func (c *jobberConnector) Fetch(ctx context.Context, accessToken, endpoint string, params map[string]any) (map[string]any, error) {
	var query string
	switch endpoint {
	case "jobs":
		query = jobberJobsQuery
	case "clients":
		query = jobberClientsQuery
	case "quotes":
		query = jobberQuotesQuery
	default:
		return nil, ErrEndpointNotSupported
	}

	body, err := jsonAPI.Marshal(map[string]string{"query": query})
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar a query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.graphqlURL, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-JOBBER-GRAPHQL-VERSION", "2024-06-10")

	switch endpoint {
	case "jobs":
		return c.parseJobs(ctx, req)
	case "clients":
		return c.parseClients(ctx, req)
	default:
		return c.parseQuotes(ctx, req)
	}
}

func (c *jobberConnector) parseJobs(ctx context.Context, req *http.Request) (map[string]any, error) {
	var response struct {
		Data struct {
			Jobs struct {
				Nodes []struct {
					ID        string  `json:"id"`
					Title     string  `json:"title"`
					JobStatus string  `json:"jobStatus"`
					Total     float64 `json:"total"`
					Client    struct {
						ID string `json:"id"`
					} `json:"client"`
				} `json:"nodes"`
			} `json:"jobs"`
		} `json:"data"`
	}
	if err := doJSON(ctx, req, &response); err != nil {
		return nil, err
	}

	byStatus := make(map[string]int)
	rows := make([]map[string]any, 0, len(response.Data.Jobs.Nodes))
	for _, job := range response.Data.Jobs.Nodes {
		byStatus[job.JobStatus]++
		rows = append(rows, map[string]any{
			"id":     job.ID,
			"title":  job.Title,
			"status": job.JobStatus,
			"total":  fmt.Sprintf("USD %.2f", job.Total),
			"client": hashIdentifier(job.Client.ID),
		})
	}

	return map[string]any{
		"endpoint":       "jobs",
		"jobs_by_status": byStatus,
		"rows":           rows,
	}, nil
}

func (c *jobberConnector) parseClients(ctx context.Context, req *http.Request) (map[string]any, error) {
	var response struct {
		Data struct {
			Clients struct {
				Nodes []struct {
					ID        string `json:"id"`
					IsCompany bool   `json:"isCompany"`
					CreatedAt string `json:"createdAt"`
				} `json:"nodes"`
			} `json:"clients"`
		} `json:"data"`
	}
	if err := doJSON(ctx, req, &response); err != nil {
		return nil, err
	}

	companies := 0
	rows := make([]map[string]any, 0, len(response.Data.Clients.Nodes))
	for _, client := range response.Data.Clients.Nodes {
		if client.IsCompany {
			companies++
		}
		rows = append(rows, map[string]any{
			"client":     hashIdentifier(client.ID),
			"is_company": client.IsCompany,
			"created_at": client.CreatedAt,
		})
	}

	return map[string]any{
		"endpoint":      "clients",
		"total_clients": len(rows),
		"companies":     companies,
		"rows":          rows,
	}, nil
}

func (c *jobberConnector) parseQuotes(ctx context.Context, req *http.Request) (map[string]any, error) {
	var response struct {
		Data struct {
			Quotes struct {
				Nodes []struct {
					ID          string `json:"id"`
					QuoteNumber string `json:"quoteNumber"`
					QuoteStatus string `json:"quoteStatus"`
					Amounts     struct {
						Total float64 `json:"total"`
					} `json:"amounts"`
					Client struct {
						ID string `json:"id"`
					} `json:"client"`
				} `json:"nodes"`
			} `json:"quotes"`
		} `json:"data"`
	}
	if err := doJSON(ctx, req, &response); err != nil {
		return nil, err
	}

	byStatus := make(map[string]int)
	rows := make([]map[string]any, 0, len(response.Data.Quotes.Nodes))
	for _, quote := range response.Data.Quotes.Nodes {
		byStatus[quote.QuoteStatus]++
		rows = append(rows, map[string]any{
			"id":           quote.ID,
			"quote_number": quote.QuoteNumber,
			"status":       quote.QuoteStatus,
			"total":        fmt.Sprintf("USD %.2f", quote.Amounts.Total),
			"client":       hashIdentifier(quote.Client.ID),
		})
	}

	return map[string]any{
		"endpoint":         "quotes",
		"quotes_by_status": byStatus,
		"rows":             rows,
	}, nil
}
