package liveapi

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"

	jsoniter "github.com/json-iterator/go"
)

var jsonAPI = jsoniter.ConfigCompatibleWithStandardLibrary

// hashIdentifier substitui um identificador pessoal por um hash curto,
// estável dentro da mesma análise mas sem valor fora dela
func hashIdentifier(value string) string {
	if value == "" {
		return ""
	}
	sum := sha256.Sum256([]byte(strings.ToLower(strings.TrimSpace(value))))
	return hex.EncodeToString(sum[:])[:12]
}

// formatMinorUnits converte um valor em unidades mínimas para a string de
// exibição esperada nos resultados das tools
func formatMinorUnits(amount int64, currency string) string {
	if currency == "" {
		currency = "USD"
	}
	return fmt.Sprintf("%s %.2f", strings.ToUpper(currency), float64(amount)/100)
}
