package anthropicclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ad-analysis-api/internal/config"
)

const (
	providerName     = "anthropic"
	baseRetryDelay   = 1 * time.Second
	defaultMaxTokens = 2048
)

// Client implementa llm.Provider usando o SDK oficial da Anthropic.
// O retry do SDK é desabilitado: o backoff exponencial com jitter é
// controlado aqui para honrar a dica retry-after do servidor.
type Client struct {
	client     anthropic.Client
	maxRetries int
}

func NewClient(cfg *config.Config) *Client {
	client := anthropic.NewClient(
		option.WithAPIKey(cfg.Anthropic.APIKey),
		option.WithMaxRetries(0),
	)

	return &Client{
		client:     client,
		maxRetries: cfg.Anthropic.MaxRetries,
	}
}

func (c *Client) Name() string {
	return providerName
}

func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string, opts llm.GenerateOptions) (*llm.LLMResponse, error) {
	params := c.buildParams(systemPrompt, opts)
	params.Messages = []anthropic.MessageParam{
		anthropic.NewUserMessage(anthropic.NewTextBlock(userPrompt)),
	}

	message, latency, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	return &llm.LLMResponse{
		Content:      textContent(message),
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
		LatencyMs:    latency.Milliseconds(),
		Provider:     providerName,
		Model:        string(message.Model),
	}, nil
}

func (c *Client) GenerateWithTools(ctx context.Context, systemPrompt string, messages []llm.Message, tools []llm.ToolDefinition, opts llm.GenerateOptions) (*llm.ToolResponse, error) {
	params := c.buildParams(systemPrompt, opts)

	built, err := buildMessages(messages)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar mensagens: %w", err)
	}
	params.Messages = built

	toolParams, err := buildTools(tools)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar ferramentas: %w", err)
	}
	params.Tools = toolParams

	message, latency, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	response := &llm.ToolResponse{
		Content:      textContent(message),
		InputTokens:  message.Usage.InputTokens,
		OutputTokens: message.Usage.OutputTokens,
		LatencyMs:    latency.Milliseconds(),
		Provider:     providerName,
		Model:        string(message.Model),
	}

	for _, block := range message.Content {
		if toolUse, ok := block.AsAny().(anthropic.ToolUseBlock); ok {
			response.ToolCalls = append(response.ToolCalls, llm.ToolCall{
				ID:    toolUse.ID,
				Name:  toolUse.Name,
				Input: json.RawMessage(toolUse.Input),
			})
		}
	}

	return response, nil
}

func (c *Client) buildParams(systemPrompt string, opts llm.GenerateOptions) anthropic.MessageNewParams {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = llm.DefaultTemperature
	}

	params := anthropic.MessageNewParams{
		Model:       anthropic.Model(opts.Model),
		MaxTokens:   int64(maxTokens),
		Temperature: anthropic.Float(temperature),
	}

	if systemPrompt != "" {
		params.System = []anthropic.TextBlockParam{
			{Text: systemPrompt},
		}
	}

	return params
}

// callWithRetry executa a chamada com backoff exponencial e jitter em
// respostas de rate limit (429) e sobrecarga (529); a última falha é
// devolvida ao chamador, nunca engolida
func (c *Client) callWithRetry(ctx context.Context, params anthropic.MessageNewParams) (*anthropic.Message, time.Duration, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		start := time.Now()
		message, err := c.client.Messages.New(ctx, params)
		if err == nil {
			return message, time.Since(start), nil
		}

		lastErr = err

		retryAfter, retryable := retryInfo(err)
		if !retryable {
			return nil, 0, err
		}

		if attempt == c.maxRetries {
			break
		}

		delay := llm.Delay(attempt, baseRetryDelay, retryAfter)
		logrus.WithFields(logrus.Fields{
			"provider": providerName,
			"attempt":  attempt + 1,
			"delay":    delay.String(),
		}).Warn("Rate limit da Anthropic atingido, aguardando antes da próxima tentativa")

		if err := llm.Sleep(ctx, delay); err != nil {
			return nil, 0, err
		}
	}

	return nil, 0, fmt.Errorf("tentativas esgotadas no provider anthropic: %w", lastErr)
}

// retryInfo decide se o erro admite retry e extrai a dica retry-after
func retryInfo(err error) (time.Duration, bool) {
	var apiErr *anthropic.Error
	if !errors.As(err, &apiErr) {
		return 0, false
	}

	if apiErr.StatusCode != 429 && apiErr.StatusCode != 529 {
		return 0, false
	}

	if apiErr.Response != nil {
		if hint := apiErr.Response.Header.Get("retry-after"); hint != "" {
			if seconds, parseErr := time.ParseDuration(hint + "s"); parseErr == nil {
				return seconds, true
			}
		}
	}

	return 0, true
}

func textContent(message *anthropic.Message) string {
	content := ""
	for _, block := range message.Content {
		if text, ok := block.AsAny().(anthropic.TextBlock); ok {
			content += text.Text
		}
	}
	return content
}

// buildMessages converte o histórico neutro para o formato da Anthropic:
// resultados de ferramenta viram mensagens de usuário com blocos tool_result
func buildMessages(messages []llm.Message) ([]anthropic.MessageParam, error) {
	result := make([]anthropic.MessageParam, 0, len(messages))

	for _, msg := range messages {
		switch msg.Role {
		case "user":
			if msg.Content == "" {
				continue
			}
			result = append(result, anthropic.NewUserMessage(anthropic.NewTextBlock(msg.Content)))

		case "assistant":
			var blocks []anthropic.ContentBlockParamUnion
			if msg.Content != "" {
				blocks = append(blocks, anthropic.NewTextBlock(msg.Content))
			}
			for _, tc := range msg.ToolCalls {
				var input map[string]interface{}
				if err := json.Unmarshal(tc.Input, &input); err != nil {
					input = map[string]interface{}{}
				}
				blocks = append(blocks, anthropic.ContentBlockParamUnion{
					OfToolUse: &anthropic.ToolUseBlockParam{
						ID:    tc.ID,
						Name:  tc.Name,
						Input: input,
					},
				})
			}
			if len(blocks) > 0 {
				result = append(result, anthropic.MessageParam{
					Role:    anthropic.MessageParamRoleAssistant,
					Content: blocks,
				})
			}

		case "tool":
			var blocks []anthropic.ContentBlockParamUnion
			for _, tr := range msg.ToolResults {
				blocks = append(blocks, anthropic.NewToolResultBlock(tr.ToolCallID, tr.Content, tr.IsError))
			}
			if len(blocks) > 0 {
				result = append(result, anthropic.NewUserMessage(blocks...))
			}

		default:
			return nil, fmt.Errorf("role de mensagem desconhecido: %s", msg.Role)
		}
	}

	return result, nil
}

func buildTools(tools []llm.ToolDefinition) ([]anthropic.ToolUnionParam, error) {
	result := make([]anthropic.ToolUnionParam, 0, len(tools))

	for _, tool := range tools {
		var schema map[string]interface{}
		if err := json.Unmarshal(tool.InputSchema, &schema); err != nil {
			return nil, fmt.Errorf("schema inválido para a ferramenta %s: %w", tool.Name, err)
		}

		toolParam := anthropic.ToolParam{
			Name:        tool.Name,
			Description: anthropic.String(tool.Description),
			InputSchema: anthropic.ToolInputSchemaParam{
				Properties: schema["properties"],
			},
		}

		if required, ok := schema["required"].([]interface{}); ok {
			reqStrings := make([]string, len(required))
			for i, r := range required {
				reqStrings[i], _ = r.(string)
			}
			toolParam.InputSchema.Required = reqStrings
		}

		result = append(result, anthropic.ToolUnionParam{OfTool: &toolParam})
	}

	return result, nil
}
