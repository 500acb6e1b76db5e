package repository

import (
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const entitiesTable = "ad_entities"

type EntityRepository interface {
	ListByOrganization(organizationID string) ([]*domain.EntityRecord, error)
}

type entityRepository struct {
	conn *postgres.Connection
}

func NewEntityRepository(conn *postgres.Connection) EntityRepository {
	return &entityRepository{
		conn: conn,
	}
}

// ListByOrganization retorna todas as entidades sincronizadas da organização,
// ordenadas do topo (account) para a base (ad) da hierarquia
func (r *entityRepository) ListByOrganization(organizationID string) ([]*domain.EntityRecord, error) {
	query, args, err := squirrel.
		Select("id, parent_id, organization_id, platform, name, level").
		From(entitiesTable).
		Where(squirrel.Eq{"organization_id": organizationID}).
		OrderBy("platform ASC", "level DESC", "id ASC").
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	entities := make([]*domain.EntityRecord, 0)
	for rows.Next() {
		record := &domain.EntityRecord{}
		if err := rows.Scan(&record.ID, &record.ParentID, &record.OrganizationID, &record.Platform, &record.Name, &record.Level); err != nil {
			return nil, fmt.Errorf("erro ao escanear entidades: %w", err)
		}
		entities = append(entities, record)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return entities, nil
}
