package openaiclient

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/option"
	"github.com/openai/openai-go/shared"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/llm"
	"github.com/vfg2006/ad-analysis-api/internal/config"
)

const (
	providerName     = "openai"
	baseRetryDelay   = 1 * time.Second
	defaultMaxTokens = 2048
)

// Client implementa llm.Provider usando o SDK oficial da OpenAI
type Client struct {
	client     openai.Client
	maxRetries int
}

func NewClient(cfg *config.Config) *Client {
	client := openai.NewClient(
		option.WithAPIKey(cfg.OpenAI.APIKey),
		option.WithMaxRetries(0),
	)

	return &Client{
		client:     client,
		maxRetries: cfg.OpenAI.MaxRetries,
	}
}

func (c *Client) Name() string {
	return providerName
}

func (c *Client) Generate(ctx context.Context, systemPrompt, userPrompt string, opts llm.GenerateOptions) (*llm.LLMResponse, error) {
	params := c.buildParams(opts)

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, 2)
	if systemPrompt != "" {
		messages = append(messages, openai.SystemMessage(systemPrompt))
	}
	messages = append(messages, openai.UserMessage(userPrompt))
	params.Messages = messages

	completion, latency, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("resposta da OpenAI sem choices")
	}

	return &llm.LLMResponse{
		Content:      completion.Choices[0].Message.Content,
		InputTokens:  completion.Usage.PromptTokens,
		OutputTokens: completion.Usage.CompletionTokens,
		LatencyMs:    latency.Milliseconds(),
		Provider:     providerName,
		Model:        completion.Model,
	}, nil
}

func (c *Client) GenerateWithTools(ctx context.Context, systemPrompt string, messages []llm.Message, tools []llm.ToolDefinition, opts llm.GenerateOptions) (*llm.ToolResponse, error) {
	params := c.buildParams(opts)

	built, err := buildMessages(systemPrompt, messages)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar mensagens: %w", err)
	}
	params.Messages = built

	toolParams, err := buildTools(tools)
	if err != nil {
		return nil, fmt.Errorf("erro ao montar ferramentas: %w", err)
	}
	params.Tools = toolParams

	completion, latency, err := c.callWithRetry(ctx, params)
	if err != nil {
		return nil, err
	}

	if len(completion.Choices) == 0 {
		return nil, fmt.Errorf("resposta da OpenAI sem choices")
	}

	choice := completion.Choices[0].Message
	response := &llm.ToolResponse{
		Content:      choice.Content,
		InputTokens:  completion.Usage.PromptTokens,
		OutputTokens: completion.Usage.CompletionTokens,
		LatencyMs:    latency.Milliseconds(),
		Provider:     providerName,
		Model:        completion.Model,
	}

	for _, tc := range choice.ToolCalls {
		response.ToolCalls = append(response.ToolCalls, llm.ToolCall{
			ID:    tc.ID,
			Name:  tc.Function.Name,
			Input: json.RawMessage(tc.Function.Arguments),
		})
	}

	return response, nil
}

func (c *Client) buildParams(opts llm.GenerateOptions) openai.ChatCompletionNewParams {
	maxTokens := opts.MaxTokens
	if maxTokens <= 0 {
		maxTokens = defaultMaxTokens
	}

	temperature := opts.Temperature
	if temperature == 0 {
		temperature = llm.DefaultTemperature
	}

	return openai.ChatCompletionNewParams{
		Model:               shared.ChatModel(opts.Model),
		MaxCompletionTokens: openai.Int(int64(maxTokens)),
		Temperature:         openai.Float(temperature),
	}
}

// callWithRetry executa a chamada com backoff exponencial e jitter em
// rate limit (429) e erros de servidor (5xx)
func (c *Client) callWithRetry(ctx context.Context, params openai.ChatCompletionNewParams) (*openai.ChatCompletion, time.Duration, error) {
	var lastErr error

	for attempt := 0; attempt <= c.maxRetries; attempt++ {
		start := time.Now()
		completion, err := c.client.Chat.Completions.New(ctx, params)
		if err == nil {
			return completion, time.Since(start), nil
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
		}).Warn("Rate limit da OpenAI atingido, aguardando antes da próxima tentativa")

		if err := llm.Sleep(ctx, delay); err != nil {
			return nil, 0, err
		}
	}

	return nil, 0, fmt.Errorf("tentativas esgotadas no provider openai: %w", lastErr)
}

func retryInfo(err error) (time.Duration, bool) {
	var apiErr *openai.Error
	if !errors.As(err, &apiErr) {
		return 0, false
	}

	if apiErr.StatusCode != 429 && apiErr.StatusCode < 500 {
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

// buildMessages converte o histórico neutro para o formato da OpenAI
func buildMessages(systemPrompt string, messages []llm.Message) ([]openai.ChatCompletionMessageParamUnion, error) {
	result := make([]openai.ChatCompletionMessageParamUnion, 0, len(messages)+1)

	if systemPrompt != "" {
		result = append(result, openai.SystemMessage(systemPrompt))
	}

	for _, msg := range messages {
		switch msg.Role {
		case "user":
			result = append(result, openai.UserMessage(msg.Content))

		case "assistant":
			assistantMsg := openai.ChatCompletionAssistantMessageParam{}
			if msg.Content != "" {
				assistantMsg.Content = openai.ChatCompletionAssistantMessageParamContentUnion{
					OfString: openai.String(msg.Content),
				}
			}
			for _, tc := range msg.ToolCalls {
				assistantMsg.ToolCalls = append(assistantMsg.ToolCalls, openai.ChatCompletionMessageToolCallParam{
					ID:   tc.ID,
					Type: "function",
					Function: openai.ChatCompletionMessageToolCallFunctionParam{
						Name:      tc.Name,
						Arguments: string(tc.Input),
					},
				})
			}
			if msg.Content != "" || len(assistantMsg.ToolCalls) > 0 {
				result = append(result, openai.ChatCompletionMessageParamUnion{
					OfAssistant: &assistantMsg,
				})
			}

		case "tool":
			for _, tr := range msg.ToolResults {
				result = append(result, openai.ToolMessage(tr.Content, tr.ToolCallID))
			}

		default:
			return nil, fmt.Errorf("role de mensagem desconhecido: %s", msg.Role)
		}
	}

	return result, nil
}

func buildTools(tools []llm.ToolDefinition) ([]openai.ChatCompletionToolParam, error) {
	result := make([]openai.ChatCompletionToolParam, 0, len(tools))

	for _, tool := range tools {
		var schema map[string]interface{}
		if err := json.Unmarshal(tool.InputSchema, &schema); err != nil {
			return nil, fmt.Errorf("schema inválido para a ferramenta %s: %w", tool.Name, err)
		}

		result = append(result, openai.ChatCompletionToolParam{
			Function: shared.FunctionDefinitionParam{
				Name:        tool.Name,
				Description: openai.String(tool.Description),
				Parameters:  shared.FunctionParameters(schema),
			},
		})
	}

	return result, nil
}
