package pdf

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oasis00-1/oasis-springs-app/internal/config"
	"github.com/oasis00-1/oasis-springs-app/internal/domain/order"
)

func testRenderer() *Renderer {
	return NewRenderer(
		config.ReceiptConfig{Title: "Oasis Springs - Order Receipt", LogoPath: "does-not-exist.png"},
		config.MpesaConfig{Paybill: "400200", Account: "806312"},
	)
}

func testRecord() *order.Record {
	return &order.Record{
		Name:        "Jane Doe",
		Phone:       "0710000001",
		Location:    "Bamburi",
		Summary:     "20L Bottle x1; 5L Bottle x2",
		DeliveryFee: 100,
		Total:       310,
		MapsLink:    "https://maps.example/pin",
		Date:        time.Date(2025, 6, 1, 9, 0, 0, 0, time.UTC),
	}
}

func TestRenderer_Render_WritesPDF(t *testing.T) {
	lines := []order.Line{
		{Product: "20L Bottle", Quantity: 1, Subtotal: 150},
		{Product: "5L Bottle", Quantity: 2, Subtotal: 60},
	}

	path, name, err := testRenderer().Render(testRecord(), lines)

	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })

	assert.Equal(t, "receipt_Jane_Doe.pdf", name)
	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NotEmpty(t, raw)
	assert.Equal(t, "%PDF", string(raw[:4]))
}

func TestRenderer_Render_MissingLogoIsNotFatal(t *testing.T) {
	// The branding asset is optional; rendering falls back to the plain
	// header.
	path, _, err := testRenderer().Render(testRecord(), nil)

	require.NoError(t, err)
	t.Cleanup(func() { os.Remove(path) })
}

func TestRenderer_Render_NilRecord(t *testing.T) {
	_, _, err := testRenderer().Render(nil, nil)

	assert.Error(t, err)
}

func TestFileName(t *testing.T) {
	cases := []struct {
		customer string
		want     string
	}{
		{"Jane Doe", "receipt_Jane_Doe.pdf"},
		{"  Jane Doe  ", "receipt_Jane_Doe.pdf"},
		{"O'Brien/Jr", "receipt_OBrienJr.pdf"},
		{"", "receipt_order.pdf"},
		{"///", "receipt_order.pdf"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, FileName(tc.customer))
	}
}
