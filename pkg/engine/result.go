package engine

import "github.com/user/cablecheck/pkg/schema"

// Confidence pairs the overall score with a plain-language justification.
type Confidence struct {
	Overall       float64 `json:"overall"`
	Justification string  `json:"justification"`
}

// ValidationResult is the complete outcome of one validation run. It is
// never mutated after Validate returns; serializing it yields the stable
// wire form consumed by downstream tooling.
type ValidationResult struct {
	Fields        schema.FieldSet `json:"fields"`
	Validation    []Finding       `json:"validation"`
	OverallStatus Severity        `json:"overall_status"`
	Confidence    Confidence      `json:"confidence"`
}
