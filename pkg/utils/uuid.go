package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

// GenerateID gera o identificador curto usado nos jobs de análise; 12
// caracteres alfanuméricos, pois o ID circula em URLs e webhooks externos
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, 12)
}
