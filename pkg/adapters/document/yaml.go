package document

import (
	"github.com/aretw0/storyview/pkg/domain"
	"gopkg.in/yaml.v3"
)

// DecodeYAML parses a YAML story document with the same shape as the JSON one.
func DecodeYAML(data []byte) (*domain.Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	return decodeTree(raw)
}
