// Package schema defines the canonical cable design fields, their typed
// representation and the normalization rules that admit values into it.
package schema

// Canonical field names. These are the only keys that appear in results,
// findings and serialized output.
const (
	FieldStandard            = "standard"
	FieldVoltageKV           = "voltage_kv"
	FieldConductorMaterial   = "conductor_material"
	FieldConductorClass      = "conductor_class"
	FieldCSAMM2              = "csa_mm2"
	FieldInsulationMaterial  = "insulation_material"
	FieldInsulationThickness = "insulation_thickness_mm"
)

// FieldOrder fixes the canonical field sequence. Reconciliation, rule
// evaluation and rendering all walk fields in this order.
var FieldOrder = []string{
	FieldStandard,
	FieldVoltageKV,
	FieldConductorMaterial,
	FieldConductorClass,
	FieldCSAMM2,
	FieldInsulationMaterial,
	FieldInsulationThickness,
}

// Canonical values produced by normalization.
const (
	StandardIEC605021 = "IEC 60502-1"

	ConductorCopper    = "Cu"
	ConductorAluminium = "Al"

	InsulationPVC  = "PVC"
	InsulationXLPE = "XLPE"
	InsulationEPR  = "EPR"
)

// FieldSet holds the extracted cable design parameters. Every field is
// optional: a nil pointer means the input never stated the value, which
// is distinct from any stated value and serializes as an omitted key.
type FieldSet struct {
	Standard            *string  `json:"standard,omitempty"`
	VoltageKV           *float64 `json:"voltage_kv,omitempty"`
	ConductorMaterial   *string  `json:"conductor_material,omitempty"`
	ConductorClass      *string  `json:"conductor_class,omitempty"`
	CSAMM2              *float64 `json:"csa_mm2,omitempty"`
	InsulationMaterial  *string  `json:"insulation_material,omitempty"`
	InsulationThickness *float64 `json:"insulation_thickness_mm,omitempty"`
}

// Get returns the value stored under a canonical field name and whether
// the field is present. Present values come back as string or float64.
func (fs FieldSet) Get(field string) (any, bool) {
	switch field {
	case FieldStandard:
		if fs.Standard != nil {
			return *fs.Standard, true
		}
	case FieldVoltageKV:
		if fs.VoltageKV != nil {
			return *fs.VoltageKV, true
		}
	case FieldConductorMaterial:
		if fs.ConductorMaterial != nil {
			return *fs.ConductorMaterial, true
		}
	case FieldConductorClass:
		if fs.ConductorClass != nil {
			return *fs.ConductorClass, true
		}
	case FieldCSAMM2:
		if fs.CSAMM2 != nil {
			return *fs.CSAMM2, true
		}
	case FieldInsulationMaterial:
		if fs.InsulationMaterial != nil {
			return *fs.InsulationMaterial, true
		}
	case FieldInsulationThickness:
		if fs.InsulationThickness != nil {
			return *fs.InsulationThickness, true
		}
	}
	return nil, false
}

// Set stores a value under a canonical field name. Values must carry the
// types Normalize produces (string or float64); anything else is dropped.
func (fs *FieldSet) Set(field string, value any) {
	switch field {
	case FieldStandard:
		if s, ok := value.(string); ok {
			fs.Standard = &s
		}
	case FieldVoltageKV:
		if f, ok := value.(float64); ok {
			fs.VoltageKV = &f
		}
	case FieldConductorMaterial:
		if s, ok := value.(string); ok {
			fs.ConductorMaterial = &s
		}
	case FieldConductorClass:
		if s, ok := value.(string); ok {
			fs.ConductorClass = &s
		}
	case FieldCSAMM2:
		if f, ok := value.(float64); ok {
			fs.CSAMM2 = &f
		}
	case FieldInsulationMaterial:
		if s, ok := value.(string); ok {
			fs.InsulationMaterial = &s
		}
	case FieldInsulationThickness:
		if f, ok := value.(float64); ok {
			fs.InsulationThickness = &f
		}
	}
}
