package yield

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
	"gopkg.in/yaml.v3"
)

// Table holds per-crop base yield (kg/plant), price (KES/kg) and the factor
// multipliers. Keys of Multipliers[factor] are the accepted enum values.
type Table struct {
	BaseYield   map[string]float64            `yaml:"base_yield"`
	Prices      map[string]float64            `yaml:"prices"`
	Multipliers map[string]map[string]float64 `yaml:"multipliers"`
}

func Default() *Table {
	return &Table{
		BaseYield: map[string]float64{"cabbage": 1.2, "kale": 0.4, "both": 0.8},
		Prices:    map[string]float64{"cabbage": 350, "kale": 120, "both": 235},
		Multipliers: map[string]map[string]float64{
			FactorVariety:    {"hybrid": 1.3, "organic": 0.9, "standard": 1.0},
			FactorConditions: {"optimal": 1.2, "good": 1.1, "average": 0.9, "poor": 0.7},
			FactorSoil:       {"loamy": 1.1, "sandy": 0.8, "clay": 0.9, "silty": 1.05},
			FactorIrrigation: {"drip": 1.15, "sprinkler": 1.1, "flood": 1.05, "rainfed": 0.8},
			FactorFertilizer: {"mixed": 1.2, "npk": 1.15, "organic": 1.05, "none": 0.7},
			FactorPest:       {"integrated": 1.1, "chemical": 1.05, "organic": 0.95, "none": 0.7},
			FactorSeason:     {"long-rains": 1.1, "short-rains": 0.95, "dry-season": 0.9},
		},
	}
}

// Multiplier returns 1.0 for anything the table does not know.
func (t *Table) Multiplier(factor, value string) float64 {
	if m, ok := t.Multipliers[factor][value]; ok {
		return m
	}
	return 1.0
}

func (t *Table) set(kind, key string, val float64) {
	kind = normKey(kind)
	key = strings.ToLower(strings.TrimSpace(key))
	switch kind {
	case "baseyield", "base":
		t.BaseYield[key] = val
	case "price", "prices":
		t.Prices[key] = val
	default:
		f := factorAlias[kind]
		if f == "" {
			return
		}
		if t.Multipliers[f] == nil {
			t.Multipliers[f] = map[string]float64{}
		}
		t.Multipliers[f][key] = val
	}
}

var factorAlias = map[string]string{
	"variety": FactorVariety, "conditions": FactorConditions, "condition": FactorConditions,
	"soiltype": FactorSoil, "soil": FactorSoil, "irrigation": FactorIrrigation,
	"fertilizer": FactorFertilizer, "fertiliser": FactorFertilizer,
	"pestmanagement": FactorPest, "pest": FactorPest, "season": FactorSeason,
}

func normKey(s string) string {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "\uFEFF") // BOM
	s = strings.ToLower(s)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.ReplaceAll(s, "_", "")
	return s
}

// LoadTable starts from Default and applies overrides from path. An empty
// path or a missing file yields the built-in table.
func LoadTable(path string) (*Table, error) {
	t := Default()
	if path == "" {
		return t, nil
	}
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		log.Printf("[yield] table %s not found, using built-in multipliers", path)
		return t, nil
	}

	var err error
	switch strings.ToLower(filepath.Ext(path)) {
	case ".csv":
		err = t.loadCSV(path)
	case ".xlsx":
		err = t.loadXLSX(path)
	case ".yaml", ".yml":
		err = t.loadYAML(path)
	default:
		err = fmt.Errorf("unsupported table format %q", filepath.Ext(path))
	}
	if err != nil {
		return nil, fmt.Errorf("load yield table %s: %w", path, err)
	}
	log.Printf("[yield] loaded table overrides from %s", path)
	return t, nil
}

func (t *Table) loadCSV(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	cr := csv.NewReader(f)
	cr.FieldsPerRecord = -1
	head, err := cr.Read()
	if err != nil {
		return err
	}
	var rows [][]string
	for {
		rec, err := cr.Read()
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return err
		}
		rows = append(rows, rec)
	}
	return t.applyRows(head, rows)
}

func (t *Table) loadXLSX(path string) error {
	x, err := excelize.OpenFile(path)
	if err != nil {
		return err
	}
	defer x.Close()

	sheets := x.GetSheetList()
	if len(sheets) == 0 {
		return errors.New("workbook has no sheets")
	}
	rows, err := x.GetRows(sheets[0])
	if err != nil {
		return err
	}
	if len(rows) == 0 {
		return errors.New("empty sheet")
	}
	return t.applyRows(rows[0], rows[1:])
}

// applyRows reads (factor, value, multiplier) rows; header names are matched
// loosely.
func (t *Table) applyRows(head []string, rows [][]string) error {
	hmap := map[string]int{}
	for i, h := range head {
		hmap[normKey(h)] = i
	}
	findAny := func(keys ...string) int {
		for _, k := range keys {
			if idx, ok := hmap[normKey(k)]; ok {
				return idx
			}
		}
		return -1
	}
	cFactor := findAny("factor", "kind", "group")
	cValue := findAny("value", "option", "key", "crop")
	cMult := findAny("multiplier", "factorvalue", "amount", "number")
	if cFactor == -1 || cValue == -1 || cMult == -1 {
		return fmt.Errorf("missing required columns, found headers: %v (need factor, value, multiplier)", head)
	}

	for _, rec := range rows {
		get := func(idx int) string {
			if idx < 0 || idx >= len(rec) {
				return ""
			}
			return strings.TrimSpace(rec[idx])
		}
		val, err := strconv.ParseFloat(get(cMult), 64)
		if err != nil || val < 0 || get(cValue) == "" {
			continue
		}
		t.set(get(cFactor), get(cValue), val)
	}
	return nil
}

func (t *Table) loadYAML(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	var over Table
	if err := yaml.Unmarshal(b, &over); err != nil {
		return err
	}
	for k, val := range over.BaseYield {
		t.set("base_yield", k, val)
	}
	for k, val := range over.Prices {
		t.set("price", k, val)
	}
	for f, m := range over.Multipliers {
		for k, val := range m {
			t.set(f, k, val)
		}
	}
	return nil
}
