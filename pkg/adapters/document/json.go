package document

import (
	"encoding/json"

	"github.com/aretw0/storyview/pkg/domain"
)

// DecodeJSON parses a JSON story document.
func DecodeJSON(data []byte) (*domain.Document, error) {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return decodeTree(raw)
}
