package store

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/abgdnv/storefront/internal/catalog"
	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// catalogFile is the on-disk layout of a catalog file.
type catalogFile struct {
	Items []catalog.Item `yaml:"items" validate:"dive"`
}

// NewYAMLStore loads a catalog file and serves it from memory.
func NewYAMLStore(path string) (*InMemory, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %w", err)
	}
	defer f.Close()

	items, err := DecodeCatalog(f)
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", path, err)
	}
	return NewInMemoryStore(items), nil
}

// DecodeCatalog parses and validates a YAML catalog. Item ids must be unique.
func DecodeCatalog(r io.Reader) ([]catalog.Item, error) {
	var doc catalogFile
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to decode catalog: %w", err)
	}
	if err := validator.New().Struct(doc); err != nil {
		return nil, fmt.Errorf("invalid catalog: %w", err)
	}
	seen := make(map[int64]struct{}, len(doc.Items))
	for _, item := range doc.Items {
		if _, dup := seen[item.ID]; dup {
			return nil, fmt.Errorf("invalid catalog: duplicate item id %d", item.ID)
		}
		seen[item.ID] = struct{}{}
	}
	if doc.Items == nil {
		doc.Items = []catalog.Item{}
	}
	return doc.Items, nil
}
