package domain

// EntityLevel representa o nível de um objeto na hierarquia de anúncios
type EntityLevel string

const (
	LevelAd            EntityLevel = "ad"
	LevelAdSet         EntityLevel = "adset"
	LevelCampaign      EntityLevel = "campaign"
	LevelAccount       EntityLevel = "account"
	LevelCrossPlatform EntityLevel = "cross_platform"
)

// SummarizationLevels são os níveis processados de baixo para cima pelo analisador
var SummarizationLevels = []EntityLevel{LevelAd, LevelAdSet, LevelCampaign, LevelAccount}

// Entity é um nó da hierarquia de anúncios (ad ⊂ adset ⊂ campaign ⊂ account)
type Entity struct {
	ID       string      `json:"id"`
	Name     string      `json:"name"`
	Platform string      `json:"platform"`
	Level    EntityLevel `json:"level"`
	Children []*Entity   `json:"children,omitempty"`
}

// ChildIDs retorna os IDs dos filhos diretos da entidade
func (e *Entity) ChildIDs() []string {
	ids := make([]string, 0, len(e.Children))
	for _, child := range e.Children {
		ids = append(ids, child.ID)
	}
	return ids
}

// EntityRecord é a linha persistida de uma entidade, sincronizada das
// plataformas por um processo externo; a árvore é remontada a cada execução
type EntityRecord struct {
	ID             string      `json:"id"`
	ParentID       *string     `json:"parent_id,omitempty"`
	OrganizationID string      `json:"organization_id"`
	Platform       string      `json:"platform"`
	Name           string      `json:"name"`
	Level          EntityLevel `json:"level"`
}

// EntityTree é a árvore completa de entidades de uma organização,
// construída a cada execução de análise e imutável durante a execução
type EntityTree struct {
	Accounts      map[string]*Entity
	TotalEntities int
}

// EntitiesAtLevel retorna todas as entidades de um nível específico da árvore
func (t *EntityTree) EntitiesAtLevel(level EntityLevel) []*Entity {
	entities := make([]*Entity, 0)
	for _, account := range t.Accounts {
		collectAtLevel(account, level, &entities)
	}
	return entities
}

func collectAtLevel(entity *Entity, level EntityLevel, out *[]*Entity) {
	if entity.Level == level {
		*out = append(*out, entity)
		return
	}
	for _, child := range entity.Children {
		collectAtLevel(child, level, out)
	}
}
