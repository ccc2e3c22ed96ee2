package engine

import (
	"fmt"

	"github.com/user/cablecheck/pkg/schema"
)

const notSpecified = "Not specified"

// validClasses are the conductor classes IEC 60228 defines for insulated
// cables.
var validClasses = map[string]bool{
	"Class 1": true,
	"Class 2": true,
	"Class 5": true,
	"Class 6": true,
}

// Rule is one entry of the validation sequence. Violated reports whether
// the rule fires for a field set; Provided, when non-nil, renders the
// offending value for the finding.
type Rule struct {
	Field    string
	Status   Severity
	Expected string
	Message  string
	Violated func(fs schema.FieldSet) bool
	Provided func(fs schema.FieldSet) string
}

// Rules is the fixed IEC 60502-1 check sequence. Order matters: findings
// are emitted in table order, so results are reproducible run to run.
// New checks may be appended or interleaved, but existing entries keep
// their relative positions.
var Rules = []Rule{
	{
		Field:    schema.FieldStandard,
		Status:   SeverityFail,
		Expected: schema.StandardIEC605021,
		Message:  "IEC 60502-1 must be explicitly specified for low voltage cable designs.",
		Violated: func(fs schema.FieldSet) bool {
			return fs.Standard == nil || *fs.Standard != schema.StandardIEC605021
		},
		Provided: func(fs schema.FieldSet) string {
			if fs.Standard == nil {
				return notSpecified
			}
			return *fs.Standard
		},
	},
	{
		Field:    schema.FieldVoltageKV,
		Status:   SeverityWarn,
		Expected: "<= 1 kV",
		Message:  "Voltage rating must be specified. IEC 60502-1 covers cables rated up to 1 kV.",
		Violated: func(fs schema.FieldSet) bool { return fs.VoltageKV == nil },
	},
	{
		Field:    schema.FieldVoltageKV,
		Status:   SeverityFail,
		Expected: "<= 1 kV",
		Message:  "IEC 60502-1 is valid only for low voltage (<= 1 kV). Use IEC 60502-2 for medium voltage cables.",
		Violated: func(fs schema.FieldSet) bool { return fs.VoltageKV != nil && *fs.VoltageKV > 1.0 },
		Provided: func(fs schema.FieldSet) string { return fmt.Sprintf("%g kV", *fs.VoltageKV) },
	},
	{
		Field:    schema.FieldConductorMaterial,
		Status:   SeverityWarn,
		Expected: "Cu or Al",
		Message:  "Conductor material should be specified per IEC 60228.",
		Violated: func(fs schema.FieldSet) bool { return fs.ConductorMaterial == nil },
	},
	{
		Field:    schema.FieldConductorClass,
		Status:   SeverityWarn,
		Expected: "Class 1, 2, 5 or 6",
		Message:  "Conductor class must conform to IEC 60228 (Class 1=solid, 2=stranded, 5/6=flexible).",
		Violated: func(fs schema.FieldSet) bool { return fs.ConductorClass == nil },
	},
	{
		Field:    schema.FieldConductorClass,
		Status:   SeverityFail,
		Expected: "Class 1, 2, 5 or 6",
		Message:  "IEC 60228 defines Class 1, 2, 5 and 6 for insulated cables.",
		Violated: func(fs schema.FieldSet) bool {
			return fs.ConductorClass != nil && !validClasses[*fs.ConductorClass]
		},
		Provided: func(fs schema.FieldSet) string { return *fs.ConductorClass },
	},
	{
		Field:    schema.FieldCSAMM2,
		Status:   SeverityWarn,
		Expected: "IEC 60228 nominal size",
		Message:  "Cross-sectional area must be specified for conductor sizing checks.",
		Violated: func(fs schema.FieldSet) bool { return fs.CSAMM2 == nil },
	},
	{
		Field:    schema.FieldCSAMM2,
		Status:   SeverityWarn,
		Expected: "IEC 60228 nominal size",
		Message:  "Cross-sectional area does not match an IEC 60228 nominal conductor size.",
		Violated: func(fs schema.FieldSet) bool { return fs.CSAMM2 != nil && !IsNominalCSA(*fs.CSAMM2) },
		Provided: func(fs schema.FieldSet) string { return fmt.Sprintf("%g mm2", *fs.CSAMM2) },
	},
	{
		Field:    schema.FieldInsulationMaterial,
		Status:   SeverityWarn,
		Expected: "PVC, XLPE or EPR",
		Message:  "Insulation material should be specified for thickness checks.",
		Violated: func(fs schema.FieldSet) bool { return fs.InsulationMaterial == nil },
	},
	{
		Field:    schema.FieldInsulationThickness,
		Status:   SeverityWarn,
		Expected: "Per IEC 60502-1 nominal thickness",
		Message:  "Insulation thickness must be specified for wall thickness checks.",
		Violated: func(fs schema.FieldSet) bool { return fs.InsulationThickness == nil },
	},
	{
		Field:    schema.FieldInsulationThickness,
		Status:   SeverityFail,
		Expected: ">= 0.6 mm (typical minimum)",
		Message:  "Insulation thickness is below the typical minimum for low voltage cables.",
		Violated: func(fs schema.FieldSet) bool {
			return fs.InsulationThickness != nil && *fs.InsulationThickness < 0.6
		},
		Provided: func(fs schema.FieldSet) string { return fmt.Sprintf("%g mm", *fs.InsulationThickness) },
	},
	{
		Field:    schema.FieldInsulationThickness,
		Status:   SeverityWarn,
		Expected: "Per IEC 60502-1 nominal thickness",
		Message:  "Insulation thickness is below the IEC 60502-1 nominal value for this insulation and conductor size.",
		Violated: func(fs schema.FieldSet) bool {
			if fs.InsulationThickness == nil || fs.InsulationMaterial == nil || fs.CSAMM2 == nil {
				return false
			}
			min, ok := MinThickness(*fs.InsulationMaterial, *fs.CSAMM2)
			return ok && *fs.InsulationThickness < min
		},
		Provided: func(fs schema.FieldSet) string { return fmt.Sprintf("%g mm", *fs.InsulationThickness) },
	},
}

// Evaluate runs the rule table over a reconciled field set, in order.
// Only violations are returned: a fully satisfied design yields an empty,
// non-nil slice.
func Evaluate(fs schema.FieldSet) []Finding {
	findings := make([]Finding, 0, len(Rules))
	for _, rule := range Rules {
		if !rule.Violated(fs) {
			continue
		}
		provided := notSpecified
		if rule.Provided != nil {
			provided = rule.Provided(fs)
		}
		findings = append(findings, Finding{
			Field:    rule.Field,
			Status:   rule.Status,
			Expected: rule.Expected,
			Provided: provided,
			Message:  rule.Message,
		})
	}
	return findings
}
