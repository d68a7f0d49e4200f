package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// CatalogConfig holds the product catalog and the delivery fee table.
// Both are fixed for the lifetime of the process; nothing mutates them
// after Load.
type CatalogConfig struct {
	Products     []ProductConfig `yaml:"products"`
	DeliveryFees map[string]int  `yaml:"delivery_fees"`
}

type ProductConfig struct {
	Name  string `yaml:"name"`
	Price int    `yaml:"price"`
}

// DefaultCatalog returns the built-in catalog: five bottle sizes and the
// two-tier delivery fee table.
func DefaultCatalog() CatalogConfig {
	return CatalogConfig{
		Products: []ProductConfig{
			{Name: "20L Bottle", Price: 150},
			{Name: "10L Bottle", Price: 70},
			{Name: "5L Bottle", Price: 30},
			{Name: "1.5L Bottle", Price: 25},
			{Name: "0.5L Bottle", Price: 15},
		},
		DeliveryFees: map[string]int{
			"Bamburi": 100,
			"Nyali":   200,
		},
	}
}

// LoadCatalog reads the catalog from a YAML file. An empty path or a
// missing file falls back to the built-in defaults.
func LoadCatalog(path string) (CatalogConfig, error) {
	if path == "" {
		return DefaultCatalog(), nil
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return DefaultCatalog(), nil
	}
	if err != nil {
		return CatalogConfig{}, fmt.Errorf("read catalog file: %w", err)
	}

	var catalog CatalogConfig
	if err := yaml.Unmarshal(data, &catalog); err != nil {
		return CatalogConfig{}, fmt.Errorf("parse catalog file: %w", err)
	}
	if catalog.DeliveryFees == nil {
		catalog.DeliveryFees = DefaultCatalog().DeliveryFees
	}
	return catalog, nil
}

func (c CatalogConfig) validate() error {
	if len(c.Products) == 0 {
		return fmt.Errorf("catalog has no products")
	}
	for _, p := range c.Products {
		if p.Name == "" || p.Price <= 0 {
			return fmt.Errorf("catalog product %q has invalid price %d", p.Name, p.Price)
		}
	}
	return nil
}
