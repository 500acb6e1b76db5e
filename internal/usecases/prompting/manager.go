package prompting

import (
	"fmt"
	"strings"
	"sync"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

// Manager carrega e hidrata templates de prompt por slug, com cache em
// memória por processo
type Manager interface {
	GetTemplate(slug string) (*domain.PromptTemplate, error)
	GetTemplateForLevel(level domain.EntityLevel, platform string) (*domain.PromptTemplate, error)
	ClearCache()
}

type Service struct {
	templateRepo repository.PromptTemplateRepository

	mu    sync.RWMutex
	cache map[string]*domain.PromptTemplate
}

func NewService(templateRepo repository.PromptTemplateRepository) *Service {
	return &Service{
		templateRepo: templateRepo,
		cache:        make(map[string]*domain.PromptTemplate),
	}
}

// GetTemplate busca um template pelo slug, preenchendo o cache na primeira
// leitura; entradas são imutáveis depois de inseridas
func (s *Service) GetTemplate(slug string) (*domain.PromptTemplate, error) {
	s.mu.RLock()
	cached, ok := s.cache[slug]
	s.mu.RUnlock()
	if ok {
		return cached, nil
	}

	template, err := s.templateRepo.GetBySlug(slug)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar template %s: %w", slug, err)
	}

	if template == nil {
		return nil, nil
	}

	s.mu.Lock()
	s.cache[slug] = template
	s.mu.Unlock()

	return template, nil
}

// GetTemplateForLevel tenta o slug específico da plataforma antes de cair
// no template padrão do nível
func (s *Service) GetTemplateForLevel(level domain.EntityLevel, platform string) (*domain.PromptTemplate, error) {
	if platform != "" {
		slug := fmt.Sprintf("%s_level_%s", level, platform)
		template, err := s.GetTemplate(slug)
		if err != nil {
			return nil, err
		}
		if template != nil {
			return template, nil
		}

		logrus.WithFields(logrus.Fields{
			"level":    level,
			"platform": platform,
		}).Debug("Template específico da plataforma não encontrado, usando o padrão do nível")
	}

	return s.GetTemplate(fmt.Sprintf("%s_level_default", level))
}

// ClearCache descarta o cache de templates; única forma de invalidação
func (s *Service) ClearCache() {
	s.mu.Lock()
	s.cache = make(map[string]*domain.PromptTemplate)
	s.mu.Unlock()
}

// Hydrate substitui os tokens literais {chave} pelos valores informados;
// placeholders desconhecidos permanecem intocados (sem condicionais nem loops)
func Hydrate(template string, variables map[string]string) string {
	result := template
	for key, value := range variables {
		result = strings.ReplaceAll(result, "{"+key+"}", value)
	}
	return result
}
