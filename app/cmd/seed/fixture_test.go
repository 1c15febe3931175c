package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bast8313/soundora/app/domain"
)

const validFixture = `
categories:
  - slug: guitars
    name: Guitars
  - slug: keyboards
    name: Keyboards

brands:
  - slug: fender
    name: Fender

products:
  - slug: fender-stratocaster
    name: Fender Stratocaster
    description: A legendary electric guitar.
    price: "1299.00"
    stock: 3
    category: guitars
    brand: fender
`

func writeFixture(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFixture(t *testing.T) {
	fixture, err := LoadFixture(writeFixture(t, validFixture))
	require.NoError(t, err)

	require.Len(t, fixture.Categories, 2)
	assert.Equal(t, "guitars", fixture.Categories[0].Slug)
	require.Len(t, fixture.Brands, 1)
	require.Len(t, fixture.Products, 1)

	price, err := fixture.Products[0].PriceMoney()
	require.NoError(t, err)
	assert.Equal(t, domain.NewMoneyFromCents(129900), price)
}

func TestLoadFixture_MissingFile(t *testing.T) {
	_, err := LoadFixture(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.ErrorContains(t, err, "failed to read fixture file")
}

func TestLoadFixture_InvalidYAML(t *testing.T) {
	_, err := LoadFixture(writeFixture(t, "categories: [unclosed"))
	assert.ErrorContains(t, err, "failed to parse fixture file")
}

func TestFixture_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Fixture)
		wantErr string
	}{
		{
			name:   "valid fixture",
			mutate: func(f *Fixture) {},
		},
		{
			name: "duplicate category slug",
			mutate: func(f *Fixture) {
				f.Categories = append(f.Categories, FixtureCategory{Slug: "guitars", Name: "Guitars Again"})
			},
			wantErr: "duplicate category slug",
		},
		{
			name: "category without name",
			mutate: func(f *Fixture) {
				f.Categories[0].Name = ""
			},
			wantErr: "category needs both slug and name",
		},
		{
			name: "duplicate product slug",
			mutate: func(f *Fixture) {
				f.Products = append(f.Products, f.Products[0])
			},
			wantErr: "duplicate product slug",
		},
		{
			name: "invalid price",
			mutate: func(f *Fixture) {
				f.Products[0].Price = "12.999"
			},
			wantErr: "invalid price",
		},
		{
			name: "negative stock",
			mutate: func(f *Fixture) {
				f.Products[0].Stock = -1
			},
			wantErr: "stock cannot be negative",
		},
		{
			name: "unknown category reference",
			mutate: func(f *Fixture) {
				f.Products[0].Category = "drums"
			},
			wantErr: `unknown category "drums"`,
		},
		{
			name: "unknown brand reference",
			mutate: func(f *Fixture) {
				f.Products[0].Brand = "gibson"
			},
			wantErr: `unknown brand "gibson"`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fixture, err := LoadFixture(writeFixture(t, validFixture))
			require.NoError(t, err)

			tt.mutate(fixture)
			err = fixture.Validate()

			if tt.wantErr == "" {
				assert.NoError(t, err)
			} else {
				assert.ErrorContains(t, err, tt.wantErr)
			}
		})
	}
}
