package engine

import (
	_ "embed"
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

//go:embed tables.yaml
var tablesYAML []byte

type thicknessBand struct {
	MaxCSA float64 `yaml:"max_csa_mm2"`
	Min    float64 `yaml:"min_mm"`
}

type referenceTables struct {
	NominalCSA []float64                  `yaml:"nominal_csa_mm2"`
	Insulation map[string][]thicknessBand `yaml:"insulation_thickness_mm"`
}

var tables = loadTables()

func loadTables() referenceTables {
	var t referenceTables
	if err := yaml.Unmarshal(tablesYAML, &t); err != nil {
		panic(fmt.Sprintf("engine: embedded reference tables are invalid: %v", err))
	}
	return t
}

// IsNominalCSA reports whether csa matches one of the IEC 60228 nominal
// conductor sizes.
func IsNominalCSA(csa float64) bool {
	for _, v := range tables.NominalCSA {
		if math.Abs(v-csa) < 1e-9 {
			return true
		}
	}
	return false
}

// MinThickness returns the nominal insulation thickness IEC 60502-1
// assigns to the given insulation compound and conductor size. The second
// return is false when the tables do not cover the combination.
func MinThickness(material string, csa float64) (float64, bool) {
	for _, band := range tables.Insulation[material] {
		if csa <= band.MaxCSA {
			return band.Min, true
		}
	}
	return 0, false
}
