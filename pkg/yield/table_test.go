package yield

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestLoadTable_EmptyOrMissingPathIsDefault(t *testing.T) {
	tbl, err := LoadTable("")
	require.NoError(t, err)
	assert.Equal(t, Default(), tbl)

	tbl, err = LoadTable(filepath.Join(t.TempDir(), "nope.csv"))
	require.NoError(t, err)
	assert.Equal(t, Default(), tbl)
}

func TestLoadTable_CSVWithAliasedHeaders(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	body := "\uFEFFFactor,Option,Multiplier\n" +
		"soil_type,volcanic,1.25\n" +
		"Irrigation,drip,1.3\n" +
		"base_yield,cabbage,1.5\n" +
		"price,kale,140\n" +
		"season,bad,not-a-number\n"
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	tbl, err := LoadTable(path)
	require.NoError(t, err)

	assert.Equal(t, 1.25, tbl.Multiplier(FactorSoil, "volcanic"))
	assert.Equal(t, 1.3, tbl.Multiplier(FactorIrrigation, "drip"))
	assert.Equal(t, 1.5, tbl.BaseYield["cabbage"])
	assert.Equal(t, 140.0, tbl.Prices["kale"])
	assert.Equal(t, 1.1, tbl.Multiplier(FactorSoil, "loamy"))
	_, ok := tbl.Multipliers[FactorSeason]["bad"]
	assert.False(t, ok)
}

func TestLoadTable_CSVMissingColumns(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.csv")
	require.NoError(t, os.WriteFile(path, []byte("a,b\n1,2\n"), 0o644))

	_, err := LoadTable(path)
	assert.ErrorContains(t, err, "missing required columns")
}

func TestLoadTable_YAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.yaml")
	body := `
prices:
  cabbage: 400
multipliers:
  season:
    long-rains: 1.2
  pest_management:
    biological: 1.02
`
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))

	tbl, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 400.0, tbl.Prices["cabbage"])
	assert.Equal(t, 1.2, tbl.Multiplier(FactorSeason, "long-rains"))
	assert.Equal(t, 1.02, tbl.Multiplier(FactorPest, "biological"))
	assert.Equal(t, 0.4, tbl.BaseYield["kale"])
}

func TestLoadTable_XLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.xlsx")
	x := excelize.NewFile()
	sheet := x.GetSheetName(0)
	require.NoError(t, x.SetSheetRow(sheet, "A1", &[]any{"factor", "value", "multiplier"}))
	require.NoError(t, x.SetSheetRow(sheet, "A2", &[]any{"variety", "f1-hybrid", 1.4}))
	require.NoError(t, x.SaveAs(path))
	require.NoError(t, x.Close())

	tbl, err := LoadTable(path)
	require.NoError(t, err)
	assert.Equal(t, 1.4, tbl.Multiplier(FactorVariety, "f1-hybrid"))
}

func TestLoadTable_UnsupportedExtension(t *testing.T) {
	path := filepath.Join(t.TempDir(), "table.json")
	require.NoError(t, os.WriteFile(path, []byte("{}"), 0o644))

	_, err := LoadTable(path)
	assert.ErrorContains(t, err, "unsupported table format")
}
