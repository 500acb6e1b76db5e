package liveapi_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi/mocks"
	"github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi/oauth"
	oauthmocks "github.com/vfg2006/ad-analysis-api/infrastructure/integrator/liveapi/oauth/mocks"
	repomocks "github.com/vfg2006/ad-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/config"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"github.com/vfg2006/ad-analysis-api/pkg/crypto"
	"go.uber.org/mock/gomock"
)

const testKeyHex = "000102030405060708090a0b0c0d0e0f101112131415161718191a1b1c1d1e1f"

func testCipher(t *testing.T) crypto.FieldCipher {
	t.Helper()
	return crypto.NewFieldCipher(testKeyHex)
}

func encrypt(t *testing.T, cipher crypto.FieldCipher, plaintext string) string {
	t.Helper()
	encrypted, err := cipher.Encrypt(plaintext)
	require.NoError(t, err)
	return encrypted
}

func TestExecutor_Execute(t *testing.T) {
	ctx := context.Background()
	cfg := config.LiveAPI{RequestTimeoutSeconds: 10}

	t.Run("Connector desconhecido deve falhar com mensagem estruturada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		executor := liveapi.NewExecutor(connectionRepo, testCipher(t), nil, cfg)

		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "tiktok", Endpoint: "campaign_performance"}, "org-1")

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "tiktok não suportado")
	})

	t.Run("Organização sem conexão ativa deve falhar sem chamar o connector", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		connector := mocks.NewMockConnector(ctrl)
		connector.EXPECT().Platform().Return("meta").AnyTimes()

		connectionRepo.EXPECT().GetActiveByOrgAndPlatform("org-1", "meta").Return(nil, nil)

		executor := liveapi.NewExecutor(connectionRepo, testCipher(t), nil, cfg, connector)
		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "meta", Endpoint: "campaign_performance"}, "org-1")

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "sem conexão ativa")
	})

	t.Run("Token ilegível deve falhar com a mensagem normalizada de credencial", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		connector := mocks.NewMockConnector(ctrl)
		connector.EXPECT().Platform().Return("meta").AnyTimes()

		connectionRepo.EXPECT().GetActiveByOrgAndPlatform("org-1", "meta").Return(&domain.Connection{
			ID:                   7,
			Platform:             "meta",
			AccessTokenEncrypted: "não-é-um-ciphertext-válido",
		}, nil)

		executor := liveapi.NewExecutor(connectionRepo, testCipher(t), nil, cfg, connector)
		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "meta", Endpoint: "campaign_performance"}, "org-1")

		assert.False(t, result.Success)
		assert.Equal(t, liveapi.CredentialErrorMessage, result.Error)
	})

	t.Run("Token expirado sem refresh token deve marcar reautenticação", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cipher := testCipher(t)
		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		connector := mocks.NewMockConnector(ctrl)
		connector.EXPECT().Platform().Return("meta").AnyTimes()

		expired := time.Now().UTC().Add(-time.Hour)
		connectionRepo.EXPECT().GetActiveByOrgAndPlatform("org-1", "meta").Return(&domain.Connection{
			ID:                   7,
			Platform:             "meta",
			AccessTokenEncrypted: encrypt(t, cipher, "token-velho"),
			ExpiresAt:            &expired,
		}, nil)
		connectionRepo.EXPECT().MarkNeedsReauth(7, gomock.Any()).Return(nil)

		executor := liveapi.NewExecutor(connectionRepo, cipher, nil, cfg, connector)
		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "meta", Endpoint: "campaign_performance"}, "org-1")

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "reautenticação necessária")
	})

	t.Run("Token expirado com refresh deve renovar e seguir a chamada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cipher := testCipher(t)
		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		provider := oauthmocks.NewMockRefreshProvider(ctrl)
		connector := mocks.NewMockConnector(ctrl)
		connector.EXPECT().Platform().Return("meta").AnyTimes()

		expired := time.Now().UTC().Add(-time.Hour)
		refreshEncrypted := encrypt(t, cipher, "refresh-token")
		connectionRepo.EXPECT().GetActiveByOrgAndPlatform("org-1", "meta").Return(&domain.Connection{
			ID:                    7,
			Platform:              "meta",
			AccessTokenEncrypted:  encrypt(t, cipher, "token-velho"),
			RefreshTokenEncrypted: &refreshEncrypted,
			ExpiresAt:             &expired,
		}, nil)

		newExpiry := time.Now().UTC().Add(time.Hour)
		provider.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(&oauth.TokenPair{
			AccessToken: "token-novo",
			ExpiresAt:   &newExpiry,
		}, nil)

		connectionRepo.EXPECT().UpdateAccessToken(7, gomock.Any(), &newExpiry).Return(nil)

		connector.EXPECT().
			Fetch(gomock.Any(), "token-novo", "campaign_performance", gomock.Any()).
			Return(map[string]any{"rows": 3}, nil)

		executor := liveapi.NewExecutor(connectionRepo, cipher, map[string]oauth.RefreshProvider{"meta": provider}, cfg, connector)
		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "meta", Endpoint: "campaign_performance"}, "org-1")

		assert.True(t, result.Success)
		assert.Equal(t, map[string]any{"rows": 3}, result.Data)
	})

	t.Run("Falha na renovação deve marcar reautenticação e falhar", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cipher := testCipher(t)
		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		provider := oauthmocks.NewMockRefreshProvider(ctrl)
		connector := mocks.NewMockConnector(ctrl)
		connector.EXPECT().Platform().Return("meta").AnyTimes()

		expired := time.Now().UTC().Add(-time.Hour)
		refreshEncrypted := encrypt(t, cipher, "refresh-token")
		connectionRepo.EXPECT().GetActiveByOrgAndPlatform("org-1", "meta").Return(&domain.Connection{
			ID:                    7,
			Platform:              "meta",
			AccessTokenEncrypted:  encrypt(t, cipher, "token-velho"),
			RefreshTokenEncrypted: &refreshEncrypted,
			ExpiresAt:             &expired,
		}, nil)

		provider.EXPECT().Refresh(gomock.Any(), "refresh-token").Return(nil, errors.New("invalid_grant"))
		connectionRepo.EXPECT().MarkNeedsReauth(7, gomock.Any()).Return(nil)

		executor := liveapi.NewExecutor(connectionRepo, cipher, map[string]oauth.RefreshProvider{"meta": provider}, cfg, connector)
		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "meta", Endpoint: "campaign_performance"}, "org-1")

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "reautenticação necessária")
	})

	t.Run("Endpoint não suportado deve virar erro estruturado", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cipher := testCipher(t)
		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		connector := mocks.NewMockConnector(ctrl)
		connector.EXPECT().Platform().Return("meta").AnyTimes()

		connectionRepo.EXPECT().GetActiveByOrgAndPlatform("org-1", "meta").Return(&domain.Connection{
			ID:                   7,
			Platform:             "meta",
			AccessTokenEncrypted: encrypt(t, cipher, "token-valido"),
		}, nil)

		connector.EXPECT().
			Fetch(gomock.Any(), "token-valido", "endpoint_inexistente", gomock.Any()).
			Return(nil, liveapi.ErrEndpointNotSupported)

		executor := liveapi.NewExecutor(connectionRepo, cipher, nil, cfg, connector)
		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "meta", Endpoint: "endpoint_inexistente"}, "org-1")

		assert.False(t, result.Success)
		assert.Contains(t, result.Error, "endpoint_inexistente não suportado")
	})

	t.Run("Chamada com token válido deve repassar os dados do connector", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		cipher := testCipher(t)
		connectionRepo := repomocks.NewMockConnectionRepository(ctrl)
		connector := mocks.NewMockConnector(ctrl)
		connector.EXPECT().Platform().Return("stripe").AnyTimes()

		connectionRepo.EXPECT().GetActiveByOrgAndPlatform("org-1", "stripe").Return(&domain.Connection{
			ID:                   9,
			Platform:             "stripe",
			AccessTokenEncrypted: encrypt(t, cipher, "sk_live"),
		}, nil)

		params := map[string]any{"since": "2026-08-01"}
		connector.EXPECT().
			Fetch(gomock.Any(), "sk_live", "transactions", params).
			Return(map[string]any{"total_amount": "USD 120.00"}, nil)

		executor := liveapi.NewExecutor(connectionRepo, cipher, nil, cfg, connector)
		result := executor.Execute(ctx, liveapi.ToolRequest{Connector: "stripe", Endpoint: "transactions", Params: params}, "org-1")

		assert.True(t, result.Success)
		assert.Equal(t, "USD 120.00", result.Data["total_amount"])
		assert.Empty(t, result.Error)
	})
}
