package sku_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"procura/internal/port"
	"procura/internal/sku"
)

func TestCodeGenerator_Deterministic(t *testing.T) {
	gen := sku.NewCodeGenerator()

	input := port.SkuCodeInput{
		Category:          "NVL",
		SupplierShortCode: "TC",
		ProductName:       "Bột mì",
		Unit:              "kg",
	}

	first, err := gen.Generate(context.Background(), input)
	require.NoError(t, err)
	second, err := gen.Generate(context.Background(), input)
	require.NoError(t, err)

	assert.Equal(t, first, second)
	assert.True(t, strings.HasPrefix(first, "NVL-TC-"))
	assert.Len(t, first, len("NVL-TC-")+6)
}

func TestCodeGenerator_NormalizesTuple(t *testing.T) {
	gen := sku.NewCodeGenerator()

	a, err := gen.Generate(context.Background(), port.SkuCodeInput{
		Category: "NVL", SupplierShortCode: "TC", ProductName: "Bột mì", Unit: "Kilogram",
	})
	require.NoError(t, err)
	b, err := gen.Generate(context.Background(), port.SkuCodeInput{
		Category: "NVL", SupplierShortCode: "TC", ProductName: "bot mi", Unit: "KG",
	})
	require.NoError(t, err)

	// Diacritic and unit-synonym variants collapse to the same code.
	assert.Equal(t, a, b)
}

func TestCodeGenerator_DistinctProducts(t *testing.T) {
	gen := sku.NewCodeGenerator()

	a, err := gen.Generate(context.Background(), port.SkuCodeInput{
		Category: "NVL", SupplierShortCode: "TC", ProductName: "Bột mì", Unit: "kg",
	})
	require.NoError(t, err)
	b, err := gen.Generate(context.Background(), port.SkuCodeInput{
		Category: "NVL", SupplierShortCode: "TC", ProductName: "Đường cát", Unit: "kg",
	})
	require.NoError(t, err)

	assert.NotEqual(t, a, b)
}

func TestCodeGenerator_RequiresShortCode(t *testing.T) {
	gen := sku.NewCodeGenerator()

	_, err := gen.Generate(context.Background(), port.SkuCodeInput{
		Category: "NVL", ProductName: "Bột mì", Unit: "kg",
	})

	assert.Error(t, err)
}
