package liveapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashIdentifier(t *testing.T) {
	t.Run("Hash deve ser estável e curto", func(t *testing.T) {
		first := hashIdentifier("cus_ABC123")
		second := hashIdentifier("cus_ABC123")

		assert.Equal(t, first, second)
		assert.Len(t, first, 12)
		assert.NotEqual(t, first, hashIdentifier("cus_XYZ789"))
	})

	t.Run("Hash deve normalizar caixa e espaços", func(t *testing.T) {
		assert.Equal(t, hashIdentifier("Cliente@Email.com"), hashIdentifier("  cliente@email.com "))
	})

	t.Run("Valor vazio deve retornar vazio", func(t *testing.T) {
		assert.Empty(t, hashIdentifier(""))
	})
}

func TestFormatMinorUnits(t *testing.T) {
	assert.Equal(t, "USD 120.00", formatMinorUnits(12000, "usd"))
	assert.Equal(t, "BRL 99.90", formatMinorUnits(9990, "brl"))
	assert.Equal(t, "USD 0.50", formatMinorUnits(50, ""))
}

func TestStripeConnector_CustomerDetails_SemPII(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/customers", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "cus_1", "email": "cliente@example.com", "name": "Maria Silva", "currency": "brl", "delinquent": false},
				{"id": "cus_2", "email": "outro@example.com", "name": "João Souza", "currency": "brl", "delinquent": true}
			]
		}`))
	}))
	defer server.Close()

	connector := &stripeConnector{baseURL: server.URL}
	result, err := connector.Fetch(context.Background(), "sk_test", "customer_details", nil)
	require.NoError(t, err)

	assert.Equal(t, 2, result["total_customers"])
	assert.Equal(t, 1, result["delinquent_customers"])

	// Nenhum campo pessoal pode sobreviver à sanitização
	serialized, err := jsonAPI.MarshalToString(result)
	require.NoError(t, err)
	assert.NotContains(t, serialized, "example.com")
	assert.NotContains(t, serialized, "Maria")
	assert.NotContains(t, serialized, "cus_1")

	rows, ok := result["rows"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, rows, 2)
	assert.Equal(t, hashIdentifier("cus_1"), rows[0]["customer"])
}

func TestStripeConnector_Transactions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/charges", r.URL.Path)
		assert.Equal(t, "25", r.URL.Query().Get("limit"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"data": [
				{"id": "ch_1", "amount": 12000, "currency": "usd", "status": "succeeded", "customer": "cus_1"}
			]
		}`))
	}))
	defer server.Close()

	connector := &stripeConnector{baseURL: server.URL}
	result, err := connector.Fetch(context.Background(), "sk_test", "transactions", nil)
	require.NoError(t, err)

	rows, ok := result["rows"].([]map[string]any)
	require.True(t, ok)
	require.Len(t, rows, 1)
	assert.Equal(t, "USD 120.00", rows[0]["amount"])
	assert.Equal(t, hashIdentifier("cus_1"), rows[0]["customer"])
}

func TestStripeConnector_EndpointDesconhecido(t *testing.T) {
	connector := NewStripeConnector()

	_, err := connector.Fetch(context.Background(), "sk_test", "payouts", nil)

	assert.ErrorIs(t, err, ErrEndpointNotSupported)
	assert.True(t, strings.HasPrefix(connector.Platform(), "stripe"))
}
