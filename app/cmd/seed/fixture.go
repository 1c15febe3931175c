package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Bast8313/soundora/app/domain"
)

// Fixture is the parsed catalog seed file. Products reference categories
// and brands by slug; every reference must resolve inside the same file.
type Fixture struct {
	Categories []FixtureCategory `yaml:"categories"`
	Brands     []FixtureBrand    `yaml:"brands"`
	Products   []FixtureProduct  `yaml:"products"`
}

type FixtureCategory struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

type FixtureBrand struct {
	Slug string `yaml:"slug"`
	Name string `yaml:"name"`
}

type FixtureProduct struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	Description string `yaml:"description"`
	Price       string `yaml:"price"`
	Stock       int    `yaml:"stock"`
	Category    string `yaml:"category"`
	Brand       string `yaml:"brand"`
}

// PriceMoney parses the product price into exact cents.
func (p FixtureProduct) PriceMoney() (domain.Money, error) {
	return domain.ParseMoney(p.Price)
}

// LoadFixture reads and validates a catalog seed file.
func LoadFixture(path string) (*Fixture, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read fixture file: %w", err)
	}

	var fixture Fixture
	if err := yaml.Unmarshal(raw, &fixture); err != nil {
		return nil, fmt.Errorf("failed to parse fixture file: %w", err)
	}

	if err := fixture.Validate(); err != nil {
		return nil, err
	}

	return &fixture, nil
}

// Validate checks slugs, prices and cross-references before any row is
// written, so a bad fixture never leaves a half-seeded catalog.
func (f *Fixture) Validate() error {
	categories := make(map[string]bool, len(f.Categories))
	for _, c := range f.Categories {
		if c.Slug == "" || c.Name == "" {
			return fmt.Errorf("category needs both slug and name, got slug=%q name=%q", c.Slug, c.Name)
		}
		if categories[c.Slug] {
			return fmt.Errorf("duplicate category slug: %s", c.Slug)
		}
		categories[c.Slug] = true
	}

	brands := make(map[string]bool, len(f.Brands))
	for _, b := range f.Brands {
		if b.Slug == "" || b.Name == "" {
			return fmt.Errorf("brand needs both slug and name, got slug=%q name=%q", b.Slug, b.Name)
		}
		if brands[b.Slug] {
			return fmt.Errorf("duplicate brand slug: %s", b.Slug)
		}
		brands[b.Slug] = true
	}

	seen := make(map[string]bool, len(f.Products))
	for _, p := range f.Products {
		if p.Slug == "" || p.Name == "" {
			return fmt.Errorf("product needs both slug and name, got slug=%q name=%q", p.Slug, p.Name)
		}
		if seen[p.Slug] {
			return fmt.Errorf("duplicate product slug: %s", p.Slug)
		}
		seen[p.Slug] = true

		if _, err := p.PriceMoney(); err != nil {
			return fmt.Errorf("product %s: invalid price %q: %w", p.Slug, p.Price, err)
		}
		if p.Stock < 0 {
			return fmt.Errorf("product %s: stock cannot be negative", p.Slug)
		}
		if !categories[p.Category] {
			return fmt.Errorf("product %s: unknown category %q", p.Slug, p.Category)
		}
		if !brands[p.Brand] {
			return fmt.Errorf("product %s: unknown brand %q", p.Slug, p.Brand)
		}
	}

	return nil
}
