package commons

import (
	"fmt"
	"os"

	"github.com/shopspring/decimal"
	"go.yaml.in/yaml/v3"

	"pasteleria/internal/domain"
)

type catalogFile struct {
	Products []catalogEntry `yaml:"products"`
}

type catalogEntry struct {
	Name        string  `yaml:"name"`
	Description *string `yaml:"description"`
	Price       string  `yaml:"price"`
	ImageURL    *string `yaml:"image_url"`
	Category    string  `yaml:"category"`
	Available   *bool   `yaml:"available"`
	Featured    *bool   `yaml:"featured"`
}

// LoadCatalog reads a YAML product list used to seed the catalog.
func LoadCatalog(path string) ([]domain.ProductInput, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}

	var file catalogFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing catalog file: %w", err)
	}

	inputs := make([]domain.ProductInput, 0, len(file.Products))
	for i, e := range file.Products {
		price, err := decimal.NewFromString(e.Price)
		if err != nil {
			return nil, fmt.Errorf("product %d (%q): invalid price %q: %w", i+1, e.Name, e.Price, err)
		}
		inputs = append(inputs, domain.ProductInput{
			Name:        e.Name,
			Price:       price,
			Description: e.Description,
			ImageURL:    e.ImageURL,
			Category:    e.Category,
			Available:   e.Available,
			Featured:    e.Featured,
		})
	}

	return inputs, nil
}
