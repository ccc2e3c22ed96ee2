package engine

import (
	"fmt"
	"math"
	"strings"
)

// Confidence deductions per finding. A clean run scores 1.0; every
// finding lowers the score, FAIL costing more than WARN, floored at zero.
const (
	failPenalty = 0.35
	warnPenalty = 0.15
)

// Score reduces findings to the overall status and confidence. The status
// is the worst severity present, PASS when there are no findings.
func Score(findings []Finding) (Severity, Confidence) {
	status := SeverityPass
	score := 1.0
	for _, f := range findings {
		if f.Status.Outranks(status) {
			status = f.Status
		}
		switch f.Status {
		case SeverityFail:
			score -= failPenalty
		case SeverityWarn:
			score -= warnPenalty
		}
	}
	score = math.Round(math.Max(score, 0)*100) / 100

	return status, Confidence{Overall: score, Justification: justification(findings)}
}

// justification summarizes which fields drew findings, grouped by
// severity in evaluation order.
func justification(findings []Finding) string {
	if len(findings) == 0 {
		return "All checks satisfied."
	}

	var fails, warns []string
	for _, f := range findings {
		switch f.Status {
		case SeverityFail:
			fails = append(fails, f.Field)
		case SeverityWarn:
			warns = append(warns, f.Field)
		}
	}

	parts := make([]string, 0, 2)
	if len(fails) > 0 {
		parts = append(parts, fmt.Sprintf("%d FAIL (%s)", len(fails), strings.Join(fails, ", ")))
	}
	if len(warns) > 0 {
		parts = append(parts, fmt.Sprintf("%d WARN (%s)", len(warns), strings.Join(warns, ", ")))
	}
	return strings.Join(parts, "; ")
}
