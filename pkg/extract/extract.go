// Package extract derives cable design fields from free text using fixed
// lexical patterns. It is the deterministic half of the pipeline: no
// network, no state, and the same text always yields the same fields.
package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/user/cablecheck/pkg/schema"
)

var (
	reVoltageDual = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*/\s*(\d+(?:\.\d+)?)\s*kv`)
	reVoltage     = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*kv`)
	reCSA         = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*(?:sqmm|mm2|mm²)`)
	reClass       = regexp.MustCompile(`class\s*(\d+)`)
	reMM          = regexp.MustCompile(`(\d+(?:\.\d+)?)\s*mm`)
	reThicknessAt = regexp.MustCompile(`insulation|tᵢ|\bti\b`)
)

// Extract scans text for cable design parameters. Fields with no matching
// pattern stay absent; Extract itself never fails.
func Extract(text string) schema.FieldSet {
	t := strings.ToLower(text)
	var fs schema.FieldSet

	if std, ok := extractStandard(t); ok {
		fs.Standard = &std
	}
	if v, ok := extractVoltage(t); ok {
		fs.VoltageKV = &v
	}
	if mat, ok := schema.CanonicalConductor(t); ok {
		fs.ConductorMaterial = &mat
	}
	if m := reClass.FindStringSubmatch(t); m != nil {
		cls := "Class " + m[1]
		fs.ConductorClass = &cls
	}
	if m := reCSA.FindStringSubmatch(t); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			fs.CSAMM2 = &v
		}
	}
	if ins, ok := schema.CanonicalInsulation(t); ok {
		fs.InsulationMaterial = &ins
	}
	if v, ok := extractThickness(t); ok {
		fs.InsulationThickness = &v
	}

	return fs
}

func extractStandard(t string) (string, bool) {
	switch std := schema.CanonicalStandard(t); std {
	case schema.StandardIEC605021, "IEC 60502 (ambiguous - specify part)":
		return std, true
	}
	return "", false
}

// extractVoltage reads the rated voltage in kV. Dual ratings like
// "0.6/1 kV" designate U0/U; the phase-to-phase voltage U is the one the
// standard scopes on, so the second number wins.
func extractVoltage(t string) (float64, bool) {
	if m := reVoltageDual.FindStringSubmatch(t); m != nil {
		if v, err := strconv.ParseFloat(m[2], 64); err == nil {
			return v, true
		}
	}
	if m := reVoltage.FindStringSubmatch(t); m != nil {
		if v, err := strconv.ParseFloat(m[1], 64); err == nil {
			return v, true
		}
	}
	return 0, false
}

// extractThickness reads the insulation wall thickness. First preference
// is a millimetre value on the same line after an insulation keyword;
// failing that, a millimetre value that is the only one in the text.
func extractThickness(t string) (float64, bool) {
	if loc := reThicknessAt.FindStringIndex(t); loc != nil {
		rest := t[loc[1]:]
		if i := strings.IndexByte(rest, '\n'); i >= 0 {
			rest = rest[:i]
		}
		if vals := bareMM(rest); len(vals) > 0 {
			return vals[0], true
		}
	}
	if vals := bareMM(t); len(vals) == 1 {
		return vals[0], true
	}
	return 0, false
}

// bareMM collects numbers carrying a bare "mm" unit, skipping the mm2 and
// mm² area forms.
func bareMM(t string) []float64 {
	var out []float64
	for _, m := range reMM.FindAllStringSubmatchIndex(t, -1) {
		rest := t[m[1]:]
		if strings.HasPrefix(rest, "2") || strings.HasPrefix(rest, "²") {
			continue
		}
		v, err := strconv.ParseFloat(t[m[2]:m[3]], 64)
		if err != nil {
			continue
		}
		out = append(out, v)
	}
	return out
}
