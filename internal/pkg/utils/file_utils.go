package utils

import (
	"encoding/json"
	"os"

	"solana_advisor/internal/domain/entity"
)

// LoadTokensFromJSON reads a JSON file containing a list of token registry
// entries. The file is optional deployment configuration that extends the
// built-in mint table.
func LoadTokensFromJSON(filePath string) ([]entity.TokenInfo, error) {
	data, err := os.ReadFile(filePath)
	if err != nil {
		return nil, err
	}

	var tokens []entity.TokenInfo
	if err := json.Unmarshal(data, &tokens); err != nil {
		return nil, err
	}
	return tokens, nil
}
