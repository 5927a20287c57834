package cli

import (
	"bytes"
	"testing"

	"github.com/sangkips/booth-pos/internal/bootstrap"
	"github.com/sangkips/booth-pos/internal/config"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBuild(fs afero.Fs) BuildFunc {
	cfg := &config.Config{
		Storage: config.StorageConfig{Driver: "file", Path: "/booth", KVFile: "store.json", QRCacheFile: "Cache.json"},
		Bank:    config.BankDefaultsConfig{BankCode: "CAKE", AccountNumber: "0862435375", AccountName: "NGUYEN THANH NAM"},
		Printer: config.PrinterConfig{Type: "none", CharWidth: 32},
	}
	return func() (*bootstrap.Services, error) {
		return bootstrap.Build(cfg, fs)
	}
}

func run(t *testing.T, fs afero.Fs, args ...string) (string, error) {
	t.Helper()
	root := NewRootCmd(testBuild(fs), fs)
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(args)
	err := root.Execute()
	return out.String(), err
}

func TestProductsCommands(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "products", "add", "Cà phê sữa", "25000")
	require.NoError(t, err)
	assert.Contains(t, out, "added Cà phê sữa (25.000d)")

	_, err = run(t, fs, "products", "add", "cà phê SỮA", "30000")
	assert.Error(t, err)

	_, err = run(t, fs, "products", "add", "Latte", "abc")
	assert.Error(t, err)

	out, err = run(t, fs, "products", "update", "Cà phê sữa", "--price", "27000")
	require.NoError(t, err)
	assert.Contains(t, out, "updated Cà phê sữa (27.000d)")

	out, err = run(t, fs, "products", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "Cà phê sữa")
	assert.Contains(t, out, "27.000d")

	out, err = run(t, fs, "products", "export", "-o", "/tmp/catalog.xlsx")
	require.NoError(t, err)
	assert.Contains(t, out, "/tmp/catalog.xlsx")
	exists, err := afero.Exists(fs, "/tmp/catalog.xlsx")
	require.NoError(t, err)
	assert.True(t, exists)

	_, err = run(t, fs, "products", "rm", "Cà phê sữa")
	require.NoError(t, err)
	out, err = run(t, fs, "products", "list")
	require.NoError(t, err)
	assert.NotContains(t, out, "Cà phê sữa")
}

func TestSettingsCommands(t *testing.T) {
	fs := afero.NewMemMapFs()

	out, err := run(t, fs, "settings", "show")
	require.NoError(t, err)
	assert.Contains(t, out, "CAKE")
	assert.Contains(t, out, "NGUYEN THANH NAM")

	require.NoError(t, afero.WriteFile(fs, "/booth/Cache.json", []byte(`{"10000":"data:image/png;base64,AA=="}`), 0o644))
	out, err = run(t, fs, "qr", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "10.000d")

	out, err = run(t, fs, "settings", "set", "--bank", "VCB")
	require.NoError(t, err)
	assert.Contains(t, out, "saved VCB 0862435375")

	out, err = run(t, fs, "qr", "ls")
	require.NoError(t, err)
	assert.NotContains(t, out, "10.000d")
}

func TestQRCommands_RemoveAndValidate(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/booth/Cache.json",
		[]byte(`{"10000":"a","20000":"b","30000":"c"}`), 0o644))

	out, err := run(t, fs, "qr", "rm", "--index", "0")
	require.NoError(t, err)
	assert.Contains(t, out, "removed 10.000d")

	_, err = run(t, fs, "qr", "rm", "30000")
	require.NoError(t, err)

	out, err = run(t, fs, "qr", "ls")
	require.NoError(t, err)
	assert.Contains(t, out, "20.000d")
	assert.NotContains(t, out, "30.000d")

	_, err = run(t, fs, "qr", "bulk", "--start", "50000", "--end", "10000", "--step", "10000")
	assert.Error(t, err)

	_, err = run(t, fs, "qr", "clear")
	require.NoError(t, err)
	out, err = run(t, fs, "qr", "ls")
	require.NoError(t, err)
	assert.NotContains(t, out, "20.000d")
}

func TestBillCommands(t *testing.T) {
	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/booth/store.json", []byte(
		`{"incompleteBills":"[{\"billId\":\"HD123456\",\"dateTime\":\"14:30 17/10/2026\",\"products\":[{\"name\":\"Latte\",\"price\":40000,\"qty\":2}]}]"}`,
	), 0o644))

	out, err := run(t, fs, "bill", "incomplete")
	require.NoError(t, err)
	assert.Contains(t, out, "HD123456")
	assert.Contains(t, out, "80.000d")

	out, err = run(t, fs, "bill", "incomplete", "HD123456")
	require.NoError(t, err)
	assert.Contains(t, out, "Latte")

	out, err = run(t, fs, "bill", "print", "HD123456")
	require.NoError(t, err)
	assert.Contains(t, out, "printed HD123456")

	out, err = run(t, fs, "bill", "pay", "HD123456")
	require.NoError(t, err)
	assert.Contains(t, out, "marked as paid")

	out, err = run(t, fs, "bill", "pay", "HD123456")
	require.NoError(t, err)
	assert.Contains(t, out, "was not in the incomplete list")
}
