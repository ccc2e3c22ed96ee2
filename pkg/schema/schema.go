package schema

import (
	"encoding/json"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// SchemaError reports a raw key or value the schema refused to admit.
// Callers recover from it by treating the field as absent.
type SchemaError struct {
	Field  string // canonical field name, or the raw key when unrecognized
	Value  any
	Reason string
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema: %s: %s (got %v)", e.Field, e.Reason, e.Value)
}

// fieldKeys lists, per canonical field, the keys accepted for it: the
// canonical name first, then its aliases. The order is fixed so that a
// mapping carrying several spellings of one field resolves the same way
// on every run.
var fieldKeys = map[string][]string{
	FieldStandard:            {FieldStandard},
	FieldVoltageKV:           {FieldVoltageKV, "voltage"},
	FieldConductorMaterial:   {FieldConductorMaterial, "material", "conductor"},
	FieldConductorClass:      {FieldConductorClass, "class"},
	FieldCSAMM2:              {FieldCSAMM2, "csa"},
	FieldInsulationMaterial:  {FieldInsulationMaterial, "insulation"},
	FieldInsulationThickness: {FieldInsulationThickness, "insulation_thickness"},
}

// KeysFor returns the accepted key spellings for a canonical field, in
// resolution priority order.
func KeysFor(field string) []string {
	return fieldKeys[field]
}

// CanonicalField resolves a raw key to its canonical field name.
func CanonicalField(rawKey string) (string, bool) {
	k := strings.ToLower(strings.TrimSpace(rawKey))
	for _, field := range FieldOrder {
		for _, key := range fieldKeys[field] {
			if key == k {
				return field, true
			}
		}
	}
	return "", false
}

// Normalize validates and coerces one raw key-value pair into its
// canonical field name and typed value. It never mutates state; a nil
// value or a value of the wrong shape yields a *SchemaError.
func Normalize(rawKey string, rawValue any) (string, any, error) {
	field, ok := CanonicalField(rawKey)
	if !ok {
		return "", nil, &SchemaError{Field: rawKey, Value: rawValue, Reason: "unrecognized field"}
	}
	if rawValue == nil {
		return "", nil, &SchemaError{Field: field, Value: rawValue, Reason: "null value"}
	}

	switch field {
	case FieldStandard:
		s, err := toText(field, rawValue)
		if err != nil {
			return "", nil, err
		}
		return field, CanonicalStandard(s), nil

	case FieldVoltageKV:
		v, err := toNumber(field, rawValue)
		if err != nil {
			return "", nil, err
		}
		if v < 0 {
			return "", nil, &SchemaError{Field: field, Value: rawValue, Reason: "voltage must be non-negative"}
		}
		return field, v, nil

	case FieldCSAMM2, FieldInsulationThickness:
		v, err := toNumber(field, rawValue)
		if err != nil {
			return "", nil, err
		}
		if v <= 0 {
			return "", nil, &SchemaError{Field: field, Value: rawValue, Reason: "must be positive"}
		}
		return field, v, nil

	case FieldConductorMaterial:
		s, err := toText(field, rawValue)
		if err != nil {
			return "", nil, err
		}
		mat, ok := CanonicalConductor(s)
		if !ok {
			return "", nil, &SchemaError{Field: field, Value: rawValue, Reason: "unknown conductor material"}
		}
		return field, mat, nil

	case FieldConductorClass:
		cls, err := toClass(rawValue)
		if err != nil {
			return "", nil, err
		}
		return field, cls, nil

	case FieldInsulationMaterial:
		s, err := toText(field, rawValue)
		if err != nil {
			return "", nil, err
		}
		ins, ok := CanonicalInsulation(s)
		if !ok {
			return "", nil, &SchemaError{Field: field, Value: rawValue, Reason: "unknown insulation material"}
		}
		return field, ins, nil
	}

	return "", nil, &SchemaError{Field: field, Value: rawValue, Reason: "unrecognized field"}
}

// toNumber coerces a raw value to float64. Strings are accepted only when
// they are a plain decimal number; compound expressions like "0.6/1 kV"
// are rejected rather than guessed at.
func toNumber(field string, v any) (float64, error) {
	switch n := v.(type) {
	case float64:
		if math.IsNaN(n) || math.IsInf(n, 0) {
			return 0, &SchemaError{Field: field, Value: v, Reason: "not a finite number"}
		}
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int32:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case json.Number:
		f, err := n.Float64()
		if err != nil {
			return 0, &SchemaError{Field: field, Value: v, Reason: "not a number"}
		}
		return f, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(n), 64)
		if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
			return 0, &SchemaError{Field: field, Value: v, Reason: "not a number"}
		}
		return f, nil
	}
	return 0, &SchemaError{Field: field, Value: v, Reason: "not a number"}
}

// toText coerces a raw value to a non-empty string.
func toText(field string, v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", &SchemaError{Field: field, Value: v, Reason: "not a string"}
	}
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &SchemaError{Field: field, Value: v, Reason: "empty string"}
	}
	return s, nil
}

var reClassValue = regexp.MustCompile(`^(?:class\s*)?([0-9]+)$`)

// toClass coerces a conductor class given either as a number or as a
// "Class N" style string into the canonical "Class N" form.
func toClass(v any) (string, error) {
	switch c := v.(type) {
	case string:
		m := reClassValue.FindStringSubmatch(strings.ToLower(strings.TrimSpace(c)))
		if m == nil {
			return "", &SchemaError{Field: FieldConductorClass, Value: v, Reason: "not a conductor class"}
		}
		n, err := strconv.Atoi(m[1])
		if err != nil || n <= 0 {
			return "", &SchemaError{Field: FieldConductorClass, Value: v, Reason: "not a conductor class"}
		}
		return fmt.Sprintf("Class %d", n), nil
	case float64:
		if c <= 0 || c != math.Trunc(c) {
			return "", &SchemaError{Field: FieldConductorClass, Value: v, Reason: "not a conductor class"}
		}
		return fmt.Sprintf("Class %d", int(c)), nil
	case int:
		if c <= 0 {
			return "", &SchemaError{Field: FieldConductorClass, Value: v, Reason: "not a conductor class"}
		}
		return fmt.Sprintf("Class %d", c), nil
	}
	return "", &SchemaError{Field: FieldConductorClass, Value: v, Reason: "not a conductor class"}
}

// Vocabulary matchers shared by normalization and the pattern extractor.
// All of them expect lowercase input.
var (
	reCopper    = regexp.MustCompile(`\b(?:cu|copper)\b`)
	reAluminium = regexp.MustCompile(`\b(?:al|aluminium|aluminum)\b`)
	rePVC       = regexp.MustCompile(`\bpvc\b`)
	reXLPE      = regexp.MustCompile(`\bxlpe\b|cross-linked`)
	reEPR       = regexp.MustCompile(`\bepr\b`)
	reIEC605021 = regexp.MustCompile(`iec\s*60502-1`)
	reIEC60502  = regexp.MustCompile(`iec\s*60502`)
)

// CanonicalConductor scans text for a conductor material token. Copper
// takes precedence when both appear.
func CanonicalConductor(text string) (string, bool) {
	t := strings.ToLower(text)
	switch {
	case reCopper.MatchString(t):
		return ConductorCopper, true
	case reAluminium.MatchString(t):
		return ConductorAluminium, true
	}
	return "", false
}

// CanonicalInsulation scans text for an insulation material token.
func CanonicalInsulation(text string) (string, bool) {
	t := strings.ToLower(text)
	switch {
	case rePVC.MatchString(t):
		return InsulationPVC, true
	case reXLPE.MatchString(t):
		return InsulationXLPE, true
	case reEPR.MatchString(t):
		return InsulationEPR, true
	}
	return "", false
}

// CanonicalStandard normalizes standard designations that refer to
// IEC 60502-1, flags a bare IEC 60502 as ambiguous, and passes every
// other designation through untouched for the rules to judge.
func CanonicalStandard(s string) string {
	t := strings.ToLower(s)
	if reIEC605021.MatchString(t) {
		return StandardIEC605021
	}
	if reIEC60502.MatchString(t) {
		return "IEC 60502 (ambiguous - specify part)"
	}
	return strings.TrimSpace(s)
}
