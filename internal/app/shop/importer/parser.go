package importer

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

// ErrMalformedDocument возвращается, когда содержимое не является валидным YAML
var ErrMalformedDocument = errors.New("malformed catalog document")

// Parse разбирает каталог поставщика из байтов в CatalogDocument.
// Проверяется только синтаксис: отсутствующие поля (включая shop)
// обнаруживаются позже, на этапе согласования сущностей.
func Parse(raw []byte) (*CatalogDocument, error) {
	var doc CatalogDocument
	if err := yaml.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return &doc, nil
}
