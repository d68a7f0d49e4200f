package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, "0.0.0.0:8040", cfg.Server.Address())
	assert.Equal(t, "orders.csv", cfg.Store.Path)
	assert.Equal(t, "http://localhost:5000/stk_push", cfg.Mpesa.PushURL)
	assert.Equal(t, "400200", cfg.Mpesa.Paybill)
	assert.Equal(t, "806312", cfg.Mpesa.Account)
	assert.Len(t, cfg.Catalog.Products, 5)
	assert.Equal(t, 100, cfg.Catalog.DeliveryFees["Bamburi"])
	assert.Equal(t, 200, cfg.Catalog.DeliveryFees["Nyali"])
}

func TestLoad_EnvOverrides(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("ORDERS_FILE", "/var/data/orders.csv")
	t.Setenv("STK_PUSH_URL", "http://10.0.0.5:5000/stk_push")

	cfg, err := Load()

	require.NoError(t, err)
	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "/var/data/orders.csv", cfg.Store.Path)
	assert.Equal(t, "http://10.0.0.5:5000/stk_push", cfg.Mpesa.PushURL)
}

func TestLoad_InvalidPort(t *testing.T) {
	t.Setenv("HTTP_PORT", "-1")

	_, err := Load()

	assert.Error(t, err)
}

func TestLoadCatalog_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	raw := `
products:
  - name: 20L Bottle
    price: 160
  - name: 5L Bottle
    price: 35
delivery_fees:
  Bamburi: 120
  Nyali: 220
  Shanzu: 300
`
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o644))

	catalog, err := LoadCatalog(path)

	require.NoError(t, err)
	require.Len(t, catalog.Products, 2)
	assert.Equal(t, ProductConfig{Name: "20L Bottle", Price: 160}, catalog.Products[0])
	assert.Equal(t, 300, catalog.DeliveryFees["Shanzu"])
}

func TestLoadCatalog_MissingFileFallsBack(t *testing.T) {
	catalog, err := LoadCatalog(filepath.Join(t.TempDir(), "nope.yaml"))

	require.NoError(t, err)
	assert.Equal(t, DefaultCatalog(), catalog)
}

func TestLoadCatalog_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "catalog.yaml")
	require.NoError(t, os.WriteFile(path, []byte("products: [unclosed"), 0o644))

	_, err := LoadCatalog(path)

	assert.Error(t, err)
}

func TestCatalogValidate_RejectsBadPrice(t *testing.T) {
	catalog := CatalogConfig{
		Products:     []ProductConfig{{Name: "20L Bottle", Price: 0}},
		DeliveryFees: map[string]int{},
	}

	assert.Error(t, catalog.validate())
}
