package domain

import "github.com/golang-jwt/jwt/v5"

// Papéis aceitos nos tokens de serviço
const (
	RoleAdmin      = 1
	RoleSupervisor = 2
	RoleClient     = 3
)

// Claims são as claims dos tokens de serviço emitidos pelo painel;
// este serviço apenas valida tokens já emitidos, nunca os emite
type Claims struct {
	OrganizationID string `json:"organization_id"`
	RoleID         int    `json:"role_id"`
	jwt.RegisteredClaims
}
