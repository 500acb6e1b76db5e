package liveapi

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// ErrEndpointNotSupported sinaliza um par (connector, endpoint) fora das
// famílias suportadas; o executor converte em erro estruturado
var ErrEndpointNotSupported = errors.New("endpoint não suportado")

// Connector encapsula as chamadas somente leitura de uma plataforma.
// Cada connector despacha por endpoint e devolve dados já sanitizados
type Connector interface {
	Platform() string
	Fetch(ctx context.Context, accessToken, endpoint string, params map[string]any) (map[string]any, error)
}

// doJSON executa uma requisição HTTP e decodifica a resposta JSON
func doJSON(ctx context.Context, req *http.Request, out any) error {
	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return fmt.Errorf("erro ao fazer a requisição: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("erro ao ler a resposta: %w", err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return fmt.Errorf("plataforma respondeu com status %d", resp.StatusCode)
	}

	if err := jsonAPI.Unmarshal(body, out); err != nil {
		return fmt.Errorf("erro ao decodificar JSON: %w", err)
	}

	return nil
}

// stringParam lê um parâmetro string do input da tool, com valor padrão
func stringParam(params map[string]any, key, fallback string) string {
	if params == nil {
		return fallback
	}
	if value, ok := params[key].(string); ok && value != "" {
		return value
	}
	return fallback
}

// dateRangeParams resolve o intervalo padrão de consulta (últimos N dias)
func dateRangeParams(params map[string]any, days int) (string, string) {
	until := time.Now().UTC().Format(time.DateOnly)
	since := time.Now().UTC().AddDate(0, 0, -days).Format(time.DateOnly)
	return stringParam(params, "since", since), stringParam(params, "until", until)
}
