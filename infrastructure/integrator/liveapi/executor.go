package liveapi

import (
	"context"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi/oauth"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"github.com/vfg2006/ad-analysis-api/pkg/crypto"
)

const credentialErrorMessage = "credenciais inválidas, a conexão pode exigir reautenticação"

// ToolRequest é o input da tool query_api vindo do loop agêntico
type ToolRequest struct {
	Connector string         `json:"connector"`
	Endpoint  string         `json:"endpoint"`
	Params    map[string]any `json:"params,omitempty"`
}

// ToolResult é o resultado estruturado devolvido ao loop; erros viram
// mensagens legíveis, nunca panics nem texto de exceção criptográfica
type ToolResult struct {
	Success bool           `json:"success"`
	Data    map[string]any `json:"data,omitempty"`
	Error   string         `json:"error,omitempty"`
}

// Executor é o ponto único de acesso a plataformas externas durante o loop
// agêntico. Toda chamada é somente leitura, escopada pela organização e
// limitada por timeout de cancelamento
type Executor interface {
	Execute(ctx context.Context, request ToolRequest, organizationID string) ToolResult
}

type executor struct {
	connectionRepo repository.ConnectionRepository
	cipher         crypto.FieldCipher
	providers      map[string]oauth.RefreshProvider
	connectors     map[string]Connector
	requestTimeout time.Duration
}

func NewExecutor(
	connectionRepo repository.ConnectionRepository,
	fieldCipher crypto.FieldCipher,
	providers map[string]oauth.RefreshProvider,
	cfg config.LiveAPI,
	connectors ...Connector,
) Executor {
	byName := make(map[string]Connector, len(connectors))
	for _, connector := range connectors {
		byName[connector.Platform()] = connector
	}

	return &executor{
		connectionRepo: connectionRepo,
		cipher:         fieldCipher,
		providers:      providers,
		connectors:     byName,
		requestTimeout: time.Duration(cfg.RequestTimeoutSeconds) * time.Second,
	}
}

func (e *executor) Execute(ctx context.Context, request ToolRequest, organizationID string) ToolResult {
	connector, ok := e.connectors[request.Connector]
	if !ok {
		return failure(fmt.Sprintf("connector %s não suportado", request.Connector))
	}

	// A busca é sempre por organização + plataforma, nunca por id de
	// conexão, para impedir uso de token entre organizações
	connection, err := e.connectionRepo.GetActiveByOrgAndPlatform(organizationID, connector.Platform())
	if err != nil {
		logrus.WithError(err).Error("Erro ao buscar a conexão da organização")
		return failure(fmt.Sprintf("erro ao buscar a conexão com %s", request.Connector))
	}

	if connection == nil {
		return failure(fmt.Sprintf("organização sem conexão ativa com %s", request.Connector))
	}

	accessToken, err := e.cipher.Decrypt(connection.AccessTokenEncrypted)
	if err != nil {
		logrus.WithFields(logrus.Fields{
			"connection_id": connection.ID,
			"platform":      connection.Platform,
		}).WithError(err).Error("Erro ao decifrar o token de acesso")
		return failure(credentialErrorMessage)
	}

	if connection.IsExpired(time.Now().UTC()) {
		accessToken, err = e.refreshAccessToken(ctx, connection)
		if err != nil {
			return failure(err.Error())
		}
	}

	callCtx, cancel := context.WithTimeout(ctx, e.requestTimeout)
	defer cancel()

	data, err := connector.Fetch(callCtx, accessToken, request.Endpoint, request.Params)
	if err != nil {
		if errors.Is(err, ErrEndpointNotSupported) {
			return failure(fmt.Sprintf("endpoint %s não suportado pelo connector %s", request.Endpoint, request.Connector))
		}
		if errors.Is(callCtx.Err(), context.DeadlineExceeded) {
			return failure(fmt.Sprintf("chamada ao connector %s excedeu o tempo limite", request.Connector))
		}

		logrus.WithFields(logrus.Fields{
			"connector": request.Connector,
			"endpoint":  request.Endpoint,
		}).WithError(err).Error("Erro na chamada ao connector")
		return failure(fmt.Sprintf("erro na chamada a %s/%s: %v", request.Connector, request.Endpoint, err))
	}

	return ToolResult{Success: true, Data: data}
}

// refreshAccessToken renova o token expirado da conexão. Cada causa de
// falha marca a conexão como needs_reauth com uma razão legível distinta
func (e *executor) refreshAccessToken(ctx context.Context, connection *domain.Connection) (string, error) {
	if connection.RefreshTokenEncrypted == nil || *connection.RefreshTokenEncrypted == "" {
		e.markReauth(connection, "token expirado e sem refresh token armazenado")
		return "", fmt.Errorf("token de %s expirado sem refresh token, reautenticação necessária", connection.Platform)
	}

	provider, ok := e.providers[connection.Platform]
	if !ok {
		e.markReauth(connection, "plataforma sem provedor de renovação configurado")
		return "", fmt.Errorf("token de %s expirado e sem provedor de renovação, reautenticação necessária", connection.Platform)
	}

	refreshToken, err := e.cipher.Decrypt(*connection.RefreshTokenEncrypted)
	if err != nil {
		logrus.WithField("connection_id", connection.ID).WithError(err).Error("Erro ao decifrar o refresh token")
		return "", errors.New(credentialErrorMessage)
	}

	pair, err := provider.Refresh(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, oauth.ErrMissingSecrets) {
			e.markReauth(connection, "segredos do app ausentes para renovar o token")
			return "", fmt.Errorf("renovação de token de %s indisponível: segredos do app não configurados", connection.Platform)
		}

		e.markReauth(connection, fmt.Sprintf("falha na renovação do token: %v", err))
		return "", fmt.Errorf("falha ao renovar o token de %s, reautenticação necessária", connection.Platform)
	}

	encrypted, err := e.cipher.Encrypt(pair.AccessToken)
	if err != nil {
		logrus.WithField("connection_id", connection.ID).WithError(err).Error("Erro ao cifrar o token renovado")
		return "", errors.New(credentialErrorMessage)
	}

	// UpdateAccessToken também limpa o flag needs_reauth
	if err := e.connectionRepo.UpdateAccessToken(connection.ID, encrypted, pair.ExpiresAt); err != nil {
		logrus.WithField("connection_id", connection.ID).WithError(err).Error("Erro ao persistir o token renovado")
		return "", fmt.Errorf("erro ao persistir o token renovado de %s", connection.Platform)
	}

	logrus.WithFields(logrus.Fields{
		"connection_id": connection.ID,
		"platform":      connection.Platform,
	}).Info("Token de acesso renovado com sucesso")

	return pair.AccessToken, nil
}

func (e *executor) markReauth(connection *domain.Connection, reason string) {
	if err := e.connectionRepo.MarkNeedsReauth(connection.ID, reason); err != nil {
		logrus.WithField("connection_id", connection.ID).WithError(err).Error("Erro ao marcar a conexão para reautenticação")
	}
}

func failure(message string) ToolResult {
	return ToolResult{Success: false, Error: message}
}
