package importer

import (
	"fmt"

	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

// CatalogDocument представляет каталог поставщика после разбора
type CatalogDocument struct {
	Shop       string           `yaml:"shop"`
	Categories []CategoryRecord `yaml:"categories"`
	Goods      []GoodRecord     `yaml:"goods"`
}

// CategoryRecord - запись категории из каталога поставщика
type CategoryRecord struct {
	ID   int    `yaml:"id"`
	Name string `yaml:"name"`
}

// GoodRecord - запись товара из каталога поставщика
type GoodRecord struct {
	Name       string                 `yaml:"name"`
	Category   int                    `yaml:"category"`
	Model      string                 `yaml:"model"`
	Quantity   int                    `yaml:"quantity"`
	Price      float64                `yaml:"price"`
	PriceRRC   float64                `yaml:"price_rrc"`
	Parameters map[string]ScalarValue `yaml:"parameters"`
}

// ScalarValue принимает любой YAML скаляр (строку, число, булево)
// и хранит его строковое представление
type ScalarValue string

// UnmarshalYAML реализует yaml.Unmarshaler
func (v *ScalarValue) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.ScalarNode {
		return fmt.Errorf("parameter value must be a scalar, got %v", node.Kind)
	}
	*v = ScalarValue(node.Value)
	return nil
}

// String возвращает значение как строку
func (v ScalarValue) String() string {
	return string(v)
}

// CategoryIDs возвращает идентификаторы всех категорий документа
func (d *CatalogDocument) CategoryIDs() []int {
	return lo.Map(d.Categories, func(c CategoryRecord, _ int) int {
		return c.ID
	})
}
