package llm

import (
	"context"
	"encoding/json"
)

// DefaultTemperature é a temperatura padrão para resumos analíticos:
// baixa para favorecer saídas determinísticas
const DefaultTemperature = 0.3

// GenerateOptions são as opções de uma chamada de geração
type GenerateOptions struct {
	Model       string
	MaxTokens   int
	Temperature float64
}

// LLMResponse é a resposta normalizada de qualquer provider
type LLMResponse struct {
	Content      string `json:"content"`
	InputTokens  int64  `json:"input_tokens"`
	OutputTokens int64  `json:"output_tokens"`
	LatencyMs    int64  `json:"latency_ms"`
	Provider     string `json:"provider"`
	Model        string `json:"model"`
}

// ToolDefinition descreve uma ferramenta exposta ao modelo
type ToolDefinition struct {
	Name        string          `json:"name"`
	Description string          `json:"description"`
	InputSchema json.RawMessage `json:"input_schema"`
}

// ToolCall é uma invocação de ferramenta solicitada pelo modelo
type ToolCall struct {
	ID    string          `json:"id"`
	Name  string          `json:"name"`
	Input json.RawMessage `json:"input"`
}

// ToolResult é o resultado de uma ferramenta devolvido ao modelo
type ToolResult struct {
	ToolCallID string `json:"tool_call_id"`
	Content    string `json:"content"`
	IsError    bool   `json:"is_error"`
}

// Message é uma mensagem do histórico de uma sessão com ferramentas
type Message struct {
	Role        string       `json:"role"` // user | assistant | tool
	Content     string       `json:"content"`
	ToolCalls   []ToolCall   `json:"tool_calls,omitempty"`
	ToolResults []ToolResult `json:"tool_results,omitempty"`
}

// ToolResponse é a resposta de uma rodada com ferramentas disponíveis
type ToolResponse struct {
	Content      string     `json:"content"`
	ToolCalls    []ToolCall `json:"tool_calls,omitempty"`
	InputTokens  int64      `json:"input_tokens"`
	OutputTokens int64      `json:"output_tokens"`
	LatencyMs    int64      `json:"latency_ms"`
	Provider     string     `json:"provider"`
	Model        string     `json:"model"`
}

// Provider é a interface comum dos clientes de LLM: a construção
// da requisição específica de cada vendor fica inteira no cliente
type Provider interface {
	Name() string
	Generate(ctx context.Context, systemPrompt, userPrompt string, opts GenerateOptions) (*LLMResponse, error)
	GenerateWithTools(ctx context.Context, systemPrompt string, messages []Message, tools []ToolDefinition, opts GenerateOptions) (*ToolResponse, error)
}
