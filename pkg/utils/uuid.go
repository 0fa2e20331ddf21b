package utils

import gonanoid "github.com/matoous/go-nanoid/v2"

const characters = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789"

const downloadTokenLength = 24

// GenerateID gera um identificador curto e aleatório, usado nos links de download
func GenerateID() (string, error) {
	return gonanoid.Generate(characters, downloadTokenLength)
}
