package domain

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productWithVariants() *Product {
	return &Product{
		ID:   "product-1",
		Name: "Netflix Premium",
		Variants: []Variant{
			{ID: "v-1", Name: "1 Bulan", Price: decimal.NewFromInt(50000), Stock: 10, IsActive: false},
			{ID: "v-2", Name: "3 Bulan", Price: decimal.NewFromInt(120000), Stock: 5, IsActive: true},
			{ID: "v-3", Name: "12 Bulan", Price: decimal.NewFromInt(400000), Stock: 0, IsActive: true},
		},
	}
}

func TestResolveVariant_ByID(t *testing.T) {
	p := productWithVariants()

	v := p.ResolveVariant("v-3")

	require.NotNil(t, v)
	assert.Equal(t, "12 Bulan", v.Name)
}

func TestResolveVariant_UnknownIDFallsBack(t *testing.T) {
	p := productWithVariants()

	v := p.ResolveVariant("v-404")

	require.NotNil(t, v)
	assert.Equal(t, "v-2", v.ID)
}

func TestResolveVariant_UnknownIDNoneActive(t *testing.T) {
	p := productWithVariants()
	for i := range p.Variants {
		p.Variants[i].IsActive = false
	}

	v := p.ResolveVariant("v-404")

	require.NotNil(t, v)
	assert.Equal(t, "v-1", v.ID)
}

func TestResolveVariant_FirstActiveWhenIDEmpty(t *testing.T) {
	p := productWithVariants()

	v := p.ResolveVariant("")

	require.NotNil(t, v)
	assert.Equal(t, "v-2", v.ID)
}

func TestResolveVariant_FirstWhenNoneActive(t *testing.T) {
	p := productWithVariants()
	for i := range p.Variants {
		p.Variants[i].IsActive = false
	}

	v := p.ResolveVariant("")

	require.NotNil(t, v)
	assert.Equal(t, "v-1", v.ID)
}

func TestResolveVariant_NoVariants(t *testing.T) {
	p := &Product{ID: "product-1"}

	assert.Nil(t, p.ResolveVariant(""))
}

func TestPriceRange(t *testing.T) {
	p := productWithVariants()

	min, max := p.PriceRange()

	assert.True(t, min.Equal(decimal.NewFromInt(50000)), "got %s", min)
	assert.True(t, max.Equal(decimal.NewFromInt(400000)), "got %s", max)
}

func TestPriceRange_NoVariants(t *testing.T) {
	p := &Product{}

	min, max := p.PriceRange()

	assert.True(t, min.IsZero())
	assert.True(t, max.IsZero())
}

func TestInStock(t *testing.T) {
	p := productWithVariants()
	assert.True(t, p.InStock())

	for i := range p.Variants {
		p.Variants[i].Stock = 0
	}
	assert.False(t, p.InStock())
}
