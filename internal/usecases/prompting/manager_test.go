package prompting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository/mocks"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
	"go.uber.org/mock/gomock"
)

func TestService_GetTemplateForLevel(t *testing.T) {
	metaTemplate := &domain.PromptTemplate{ID: 1, Slug: "ad_level_meta", Template: "meta: {entity_name}"}
	defaultTemplate := &domain.PromptTemplate{ID: 2, Slug: "ad_level_default", Template: "padrão: {entity_name}"}

	tests := []struct {
		name     string
		level    domain.EntityLevel
		platform string
		setup    func(repo *mocks.MockPromptTemplateRepository)
		expected *domain.PromptTemplate
	}{
		{
			name:     "Template específico da plataforma deve ter prioridade",
			level:    domain.LevelAd,
			platform: "meta",
			setup: func(repo *mocks.MockPromptTemplateRepository) {
				repo.EXPECT().GetBySlug("ad_level_meta").Return(metaTemplate, nil)
			},
			expected: metaTemplate,
		},
		{
			name:     "Sem template da plataforma deve cair no padrão do nível",
			level:    domain.LevelAd,
			platform: "stripe",
			setup: func(repo *mocks.MockPromptTemplateRepository) {
				repo.EXPECT().GetBySlug("ad_level_stripe").Return(nil, nil)
				repo.EXPECT().GetBySlug("ad_level_default").Return(defaultTemplate, nil)
			},
			expected: defaultTemplate,
		},
		{
			name:     "Plataforma vazia deve ir direto ao padrão do nível",
			level:    domain.LevelCrossPlatform,
			platform: "",
			setup: func(repo *mocks.MockPromptTemplateRepository) {
				repo.EXPECT().GetBySlug("cross_platform_level_default").Return(defaultTemplate, nil)
			},
			expected: defaultTemplate,
		},
		{
			name:     "Nenhum template cadastrado deve retornar nil sem erro",
			level:    domain.LevelCampaign,
			platform: "meta",
			setup: func(repo *mocks.MockPromptTemplateRepository) {
				repo.EXPECT().GetBySlug("campaign_level_meta").Return(nil, nil)
				repo.EXPECT().GetBySlug("campaign_level_default").Return(nil, nil)
			},
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			repo := mocks.NewMockPromptTemplateRepository(ctrl)
			tt.setup(repo)

			service := NewService(repo)
			template, err := service.GetTemplateForLevel(tt.level, tt.platform)

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, template)
		})
	}
}

func TestService_GetTemplate_Cache(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	repo := mocks.NewMockPromptTemplateRepository(ctrl)
	stored := &domain.PromptTemplate{ID: 1, Slug: "account_level_default", Template: "conta"}

	// O repositório só deve ser consultado na primeira leitura
	repo.EXPECT().GetBySlug("account_level_default").Return(stored, nil).Times(1)

	service := NewService(repo)

	for i := 0; i < 3; i++ {
		template, err := service.GetTemplate("account_level_default")
		assert.NoError(t, err)
		assert.Equal(t, stored, template)
	}

	// ClearCache força nova leitura do repositório
	repo.EXPECT().GetBySlug("account_level_default").Return(stored, nil).Times(1)
	service.ClearCache()

	template, err := service.GetTemplate("account_level_default")
	assert.NoError(t, err)
	assert.Equal(t, stored, template)
}

func TestHydrate(t *testing.T) {
	tests := []struct {
		name      string
		template  string
		variables map[string]string
		expected  string
	}{
		{
			name:      "Placeholders conhecidos devem ser substituídos",
			template:  "Analise {entity_name} na plataforma {platform}.",
			variables: map[string]string{"entity_name": "Campanha X", "platform": "meta"},
			expected:  "Analise Campanha X na plataforma meta.",
		},
		{
			name:      "Placeholders desconhecidos devem permanecer intocados",
			template:  "Período de {days} dias com {placeholder_inexistente}.",
			variables: map[string]string{"days": "30"},
			expected:  "Período de 30 dias com {placeholder_inexistente}.",
		},
		{
			name:      "Placeholder repetido deve ser substituído em todas as ocorrências",
			template:  "{platform} e {platform}",
			variables: map[string]string{"platform": "meta"},
			expected:  "meta e meta",
		},
		{
			name:      "Sem variáveis o template sai como está",
			template:  "Texto fixo sem tokens.",
			variables: nil,
			expected:  "Texto fixo sem tokens.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Hydrate(tt.template, tt.variables))
		})
	}
}
