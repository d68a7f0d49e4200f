package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog() Catalog {
	return Catalog{
		{Name: "20L Bottle", Price: 150},
		{Name: "10L Bottle", Price: 70},
		{Name: "5L Bottle", Price: 30},
		{Name: "1.5L Bottle", Price: 25},
		{Name: "0.5L Bottle", Price: 15},
	}
}

func testFees() FeeTable {
	return FeeTable{"Bamburi": 100, "Nyali": 200}
}

func TestComputeQuote_BamburiScenario(t *testing.T) {
	// 20L x1 + 5L x2 delivered to Bamburi: 150 + 60 + 100 fee = 310.
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{
		"20L Bottle": 1,
		"5L Bottle":  2,
	}, "Bamburi")

	require.NoError(t, err)
	assert.Equal(t, 210, quote.Subtotal)
	assert.Equal(t, 100, quote.DeliveryFee)
	assert.Equal(t, 310, quote.Total)
	assert.Equal(t, 3, quote.Items)
}

func TestComputeQuote_FeeTable(t *testing.T) {
	cases := []struct {
		location string
		fee      int
	}{
		{"Bamburi", 100},
		{"Nyali", 200},
		{"Select", 0},
		{"Mtwapa", 0},
		{"", 0},
	}

	for _, tc := range cases {
		t.Run(tc.location, func(t *testing.T) {
			quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{"10L Bottle": 1}, tc.location)

			require.NoError(t, err)
			assert.Equal(t, tc.fee, quote.DeliveryFee)
			assert.Equal(t, 70+tc.fee, quote.Total)
		})
	}
}

func TestComputeQuote_SkipsZeroQuantities(t *testing.T) {
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{
		"20L Bottle":  0,
		"0.5L Bottle": 4,
	}, "Nyali")

	require.NoError(t, err)
	require.Len(t, quote.Lines, 1)
	assert.Equal(t, "0.5L Bottle", quote.Lines[0].Product)
	assert.Equal(t, 60, quote.Lines[0].Subtotal)
	assert.Equal(t, 4, quote.Items)
}

func TestComputeQuote_LinesFollowCatalogOrder(t *testing.T) {
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{
		"0.5L Bottle": 1,
		"20L Bottle":  1,
		"5L Bottle":   1,
	}, "Bamburi")

	require.NoError(t, err)
	require.Len(t, quote.Lines, 3)
	assert.Equal(t, "20L Bottle", quote.Lines[0].Product)
	assert.Equal(t, "5L Bottle", quote.Lines[1].Product)
	assert.Equal(t, "0.5L Bottle", quote.Lines[2].Product)
}

func TestComputeQuote_NegativeQuantity(t *testing.T) {
	_, err := ComputeQuote(testCatalog(), testFees(), map[string]int{"20L Bottle": -1}, "Bamburi")

	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestComputeQuote_UnknownProduct(t *testing.T) {
	_, err := ComputeQuote(testCatalog(), testFees(), map[string]int{"50L Drum": 1}, "Bamburi")

	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestQuote_Summary(t *testing.T) {
	quote, err := ComputeQuote(testCatalog(), testFees(), map[string]int{
		"20L Bottle": 2,
		"5L Bottle":  1,
	}, "Bamburi")

	require.NoError(t, err)
	assert.Equal(t, "20L Bottle x2; 5L Bottle x1", quote.Summary())
}

func TestFeeTable_Locations(t *testing.T) {
	assert.Equal(t, []string{"Bamburi", "Nyali"}, testFees().Locations())
}
