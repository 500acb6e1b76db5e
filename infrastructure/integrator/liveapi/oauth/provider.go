package oauth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/vfg2006/ad-analysis-api/internal/config"
)

// ErrMissingSecrets indica que as credenciais de app da plataforma não
// foram configuradas no ambiente
var ErrMissingSecrets = errors.New("segredos do app não configurados para a plataforma")

// TokenPair é o resultado de uma renovação de token bem-sucedida
type TokenPair struct {
	AccessToken string
	ExpiresAt   *time.Time
}

// RefreshProvider renova um token de acesso expirado a partir do refresh
// token armazenado. Apenas renovação: o fluxo de autorização vive fora da API
type RefreshProvider interface {
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

// NewProviders monta o mapa de provedores de renovação por plataforma.
// Plataformas com chave estática (stripe) não entram no mapa
func NewProviders(secrets config.OAuthSecrets) map[string]RefreshProvider {
	return map[string]RefreshProvider{
		"meta":       &metaProvider{appID: secrets.MetaAppID, appSecret: secrets.MetaAppSecret},
		"google_ads": &googleProvider{clientID: secrets.GoogleClientID, clientSecret: secrets.GoogleClientSecret},
		"hubspot":    &hubspotProvider{clientID: secrets.HubspotClientID, clientSecret: secrets.HubspotSecret},
		"jobber":     &jobberProvider{clientID: secrets.JobberClientID, clientSecret: secrets.JobberSecret},
	}
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int64  `json:"expires_in"`
}

// postForm executa a troca de token padrão OAuth e interpreta a resposta
func postForm(ctx context.Context, endpoint string, form url.Values) (*TokenPair, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return nil, fmt.Errorf("erro ao criar a requisição de renovação: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	client := &http.Client{}
	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("erro ao chamar o endpoint de renovação: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("erro ao ler a resposta de renovação: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("renovação de token recusada com status %d", resp.StatusCode)
	}

	var parsed tokenResponse
	if err := jsoniter.Unmarshal(body, &parsed); err != nil {
		return nil, fmt.Errorf("erro ao decodificar a resposta de renovação: %w", err)
	}

	if parsed.AccessToken == "" {
		return nil, errors.New("resposta de renovação sem access_token")
	}

	pair := &TokenPair{AccessToken: parsed.AccessToken}
	if parsed.ExpiresIn > 0 {
		expiresAt := time.Now().UTC().Add(time.Duration(parsed.ExpiresIn) * time.Second)
		pair.ExpiresAt = &expiresAt
	}

	return pair, nil
}

type metaProvider struct {
	appID     string
	appSecret string
}

// Refresh troca o token atual por um novo token de longa duração do Graph API
func (p *metaProvider) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if p.appID == "" || p.appSecret == "" {
		return nil, ErrMissingSecrets
	}

	form := url.Values{}
	form.Set("grant_type", "fb_exchange_token")
	form.Set("client_id", p.appID)
	form.Set("client_secret", p.appSecret)
	form.Set("fb_exchange_token", refreshToken)

	return postForm(ctx, "https://graph.facebook.com/v21.0/oauth/access_token", form)
}

type googleProvider struct {
	clientID     string
	clientSecret string
}

func (p *googleProvider) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if p.clientID == "" || p.clientSecret == "" {
		return nil, ErrMissingSecrets
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("refresh_token", refreshToken)

	return postForm(ctx, "https://oauth2.googleapis.com/token", form)
}

type hubspotProvider struct {
	clientID     string
	clientSecret string
}

func (p *hubspotProvider) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if p.clientID == "" || p.clientSecret == "" {
		return nil, ErrMissingSecrets
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("refresh_token", refreshToken)

	return postForm(ctx, "https://api.hubapi.com/oauth/v1/token", form)
}

type jobberProvider struct {
	clientID     string
	clientSecret string
}

func (p *jobberProvider) Refresh(ctx context.Context, refreshToken string) (*TokenPair, error) {
	if p.clientID == "" || p.clientSecret == "" {
		return nil, ErrMissingSecrets
	}

	form := url.Values{}
	form.Set("grant_type", "refresh_token")
	form.Set("client_id", p.clientID)
	form.Set("client_secret", p.clientSecret)
	form.Set("refresh_token", refreshToken)

	return postForm(ctx, "https://api.getjobber.com/api/oauth/token", form)
}
