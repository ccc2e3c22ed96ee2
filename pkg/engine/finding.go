// Package engine evaluates extracted cable design fields against the
// IEC 60502-1 rule set and reduces the outcome to a verdict.
package engine

// Severity classifies a finding. FAIL outranks WARN outranks PASS.
type Severity string

const (
	SeverityPass Severity = "PASS"
	SeverityWarn Severity = "WARN"
	SeverityFail Severity = "FAIL"
)

var severityRank = map[Severity]int{
	SeverityPass: 0,
	SeverityWarn: 1,
	SeverityFail: 2,
}

// Outranks reports whether s is more severe than other.
func (s Severity) Outranks(other Severity) bool {
	return severityRank[s] > severityRank[other]
}

// Finding records one rule violation against a single field. Findings are
// data, not errors: a validation run that produces findings has still
// succeeded.
type Finding struct {
	Field    string   `json:"field"`
	Status   Severity `json:"status"`
	Expected string   `json:"expected,omitempty"`
	Provided string   `json:"provided,omitempty"`
	Message  string   `json:"comment"`
}
