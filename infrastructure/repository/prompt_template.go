package repository

import (
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const promptTemplatesTable = "prompt_templates"

type PromptTemplateRepository interface {
	GetBySlug(slug string) (*domain.PromptTemplate, error)
}

type promptTemplateRepository struct {
	conn *postgres.Connection
}

func NewPromptTemplateRepository(conn *postgres.Connection) PromptTemplateRepository {
	return &promptTemplateRepository{
		conn: conn,
	}
}

func (r *promptTemplateRepository) GetBySlug(slug string) (*domain.PromptTemplate, error) {
	query, args, err := squirrel.
		Select("id, slug, template, updated_at").
		From(promptTemplatesTable).
		Where(squirrel.Eq{"slug": slug}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	template := &domain.PromptTemplate{}
	err = r.conn.QueryRow(query, args...).Scan(
		&template.ID,
		&template.Slug,
		&template.Template,
		&template.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear template de prompt: %w", err)
	}

	return template, nil
}
