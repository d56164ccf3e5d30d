package document

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/aretw0/storyview/pkg/domain"
	"github.com/mitchellh/mapstructure"
)

// wrapSingleHook turns a lone object into a one-element list wherever the
// target field is a slice, so "subsections": {...} reads like [{...}].
func wrapSingleHook(from reflect.Type, to reflect.Type, data any) (any, error) {
	if to.Kind() == reflect.Slice && from.Kind() == reflect.Map {
		return []any{data}, nil
	}
	return data, nil
}

// decodeTree maps a generic decoded value onto a Document.
func decodeTree(raw any) (*domain.Document, error) {
	if raw == nil {
		return nil, errors.New("document is empty")
	}
	if _, ok := raw.(map[string]any); !ok {
		return nil, fmt.Errorf("top level must be an object, got %T", raw)
	}

	var doc domain.Document
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook: mapstructure.DecodeHookFuncType(wrapSingleHook),
		Result:     &doc,
		TagName:    "mapstructure",
	})
	if err != nil {
		return nil, err
	}
	if err := decoder.Decode(raw); err != nil {
		return nil, err
	}
	return &doc, nil
}
