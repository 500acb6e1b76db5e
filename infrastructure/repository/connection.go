package repository

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/ad-analysis-api/infrastructure/database/postgres"
	"github.com/vfg2006/ad-analysis-api/internal/domain"
)

const (
	connectionsTable   = "platform_connections"
	connectionsColumns = "id, organization_id, platform, access_token_encrypted, refresh_token_encrypted, expires_at, settings, is_active, needs_reauth, reauth_reason, created_at, updated_at"
)

type ConnectionRepository interface {
	GetActiveByOrgAndPlatform(organizationID, platform string) (*domain.Connection, error)
	UpdateAccessToken(connectionID int, accessTokenEncrypted string, expiresAt *time.Time) error
	MarkNeedsReauth(connectionID int, reason string) error
}

type connectionRepository struct {
	conn *postgres.Connection
}

func NewConnectionRepository(conn *postgres.Connection) ConnectionRepository {
	return &connectionRepository{
		conn: conn,
	}
}

// GetActiveByOrgAndPlatform busca a conexão ativa de uma organização com
// uma plataforma. A busca é sempre escopada por organização, nunca apenas
// pelo id da conexão, para impedir uso de token entre tenants.
func (r *connectionRepository) GetActiveByOrgAndPlatform(organizationID, platform string) (*domain.Connection, error) {
	query, args, err := squirrel.
		Select(connectionsColumns).
		From(connectionsTable).
		Where(squirrel.Eq{
			"organization_id": organizationID,
			"platform":        platform,
			"is_active":       true,
		}).
		Limit(1).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	connection := &domain.Connection{}
	var settings []byte

	err = r.conn.QueryRow(query, args...).Scan(
		&connection.ID,
		&connection.OrganizationID,
		&connection.Platform,
		&connection.AccessTokenEncrypted,
		&connection.RefreshTokenEncrypted,
		&connection.ExpiresAt,
		&settings,
		&connection.IsActive,
		&connection.NeedsReauth,
		&connection.ReauthReason,
		&connection.CreatedAt,
		&connection.UpdatedAt,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear conexão: %w", err)
	}

	connection.Settings = settings
	return connection, nil
}

// UpdateAccessToken persiste o token renovado e limpa a flag de reautenticação
func (r *connectionRepository) UpdateAccessToken(connectionID int, accessTokenEncrypted string, expiresAt *time.Time) error {
	query, args, err := squirrel.
		Update(connectionsTable).
		Set("access_token_encrypted", accessTokenEncrypted).
		Set("expires_at", expiresAt).
		Set("needs_reauth", false).
		Set("reauth_reason", nil).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao atualizar token da conexão: %w", err)
	}

	return nil
}

// MarkNeedsReauth sinaliza que a conexão precisa de reautorização manual
func (r *connectionRepository) MarkNeedsReauth(connectionID int, reason string) error {
	query, args, err := squirrel.
		Update(connectionsTable).
		Set("needs_reauth", true).
		Set("reauth_reason", reason).
		Set("updated_at", time.Now().UTC()).
		Where(squirrel.Eq{"id": connectionID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir a query: %w", err)
	}

	if _, err := r.conn.Exec(query, args...); err != nil {
		return fmt.Errorf("erro ao marcar conexão para reautenticação: %w", err)
	}

	return nil
}
