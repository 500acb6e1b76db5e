package hierarchy

import (
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"
	"github.com/vfg2006/ad-analysis-api/infrastructure/repository"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

// TreeBuilder remonta a hierarquia de anúncios de uma organização a partir
// das linhas sincronizadas. A árvore é construída a cada execução e nunca
// compartilhada entre execuções
type TreeBuilder interface {
	BuildTree(organizationID string) (*domain.EntityTree, error)
}

type treeBuilder struct {
	entityRepo repository.EntityRepository
}

func NewTreeBuilder(entityRepo repository.EntityRepository) TreeBuilder {
	return &treeBuilder{entityRepo: entityRepo}
}

func (b *treeBuilder) BuildTree(organizationID string) (*domain.EntityTree, error) {
	records, err := b.entityRepo.ListByOrganization(organizationID)
	if err != nil {
		return nil, fmt.Errorf("erro ao listar as entidades da organização: %w", err)
	}

	byID := make(map[string]*domain.Entity, len(records))
	for _, record := range records {
		byID[record.ID] = &domain.Entity{
			ID:       record.ID,
			Name:     record.Name,
			Platform: record.Platform,
			Level:    record.Level,
		}
	}

	tree := &domain.EntityTree{Accounts: make(map[string]*domain.Entity)}
	for _, record := range records {
		entity := byID[record.ID]

		if record.Level == domain.LevelAccount {
			tree.Accounts[accountKey(record.Platform, record.ID)] = entity
			tree.TotalEntities++
			continue
		}

		if record.ParentID == nil {
			logrus.WithFields(logrus.Fields{
				"entity_id": record.ID,
				"level":     record.Level,
			}).Warn("Entidade sem pai fora do nível de conta, ignorada na árvore")
			continue
		}

		parent, ok := byID[*record.ParentID]
		if !ok {
			logrus.WithFields(logrus.Fields{
				"entity_id": record.ID,
				"parent_id": *record.ParentID,
			}).Warn("Entidade com pai desconhecido, ignorada na árvore")
			continue
		}

		parent.Children = append(parent.Children, entity)
		tree.TotalEntities++
	}

	// Ordem estável dos filhos para que execuções repetidas montem
	// prompts idênticos sobre os mesmos dados
	for _, entity := range byID {
		sort.Slice(entity.Children, func(i, j int) bool {
			return entity.Children[i].ID < entity.Children[j].ID
		})
	}

	return tree, nil
}

func accountKey(platform, accountID string) string {
	return platform + ":" + accountID
}
