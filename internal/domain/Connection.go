package domain

import (
	"encoding/json"
	"time"
)

// Connection é uma conexão de uma organização com uma plataforma externa,
// com tokens armazenados cifrados (cifra simétrica de campo)
type Connection struct {
	ID                    int             `json:"id"`
	OrganizationID        string          `json:"organization_id"`
	Platform              string          `json:"platform"`
	AccessTokenEncrypted  string          `json:"-"`
	RefreshTokenEncrypted *string         `json:"-"`
	ExpiresAt             *time.Time      `json:"expires_at,omitempty"`
	Settings              json.RawMessage `json:"settings,omitempty"`
	IsActive              bool            `json:"is_active"`
	NeedsReauth           bool            `json:"needs_reauth"`
	ReauthReason          *string         `json:"reauth_reason,omitempty"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// IsExpired indica se o token de acesso da conexão já passou da validade
func (c *Connection) IsExpired(now time.Time) bool {
	return c.ExpiresAt != nil && c.ExpiresAt.Before(now)
}
