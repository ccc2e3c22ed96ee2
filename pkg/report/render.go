package report

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/user/cablecheck/pkg/engine"
	"github.com/user/cablecheck/pkg/schema"
)

// fieldLabels maps canonical field names to their display form.
var fieldLabels = map[string]string{
	schema.FieldStandard:            "Standard",
	schema.FieldVoltageKV:           "Voltage (kV)",
	schema.FieldConductorMaterial:   "Conductor Material",
	schema.FieldConductorClass:      "Conductor Class",
	schema.FieldCSAMM2:              "CSA (mm2)",
	schema.FieldInsulationMaterial:  "Insulation Material",
	schema.FieldInsulationThickness: "Insulation Thickness (mm)",
}

// Render formats a complete validation result for the terminal.
func Render(result *engine.ValidationResult) string {
	var sb strings.Builder

	status := statusStyle(result.OverallStatus).Render(string(result.OverallStatus))
	sb.WriteString(titleStyle.Render("Validation Status: ") + status + "\n\n")

	sb.WriteString(titleStyle.Render("Extracted Design Parameters") + "\n")
	sb.WriteString(fieldsTable(result.Fields) + "\n")

	if len(result.Validation) > 0 {
		sb.WriteString("\n" + titleStyle.Render("Findings") + "\n")
		sb.WriteString(findingsTable(result.Validation) + "\n")
	}

	sb.WriteString("\n" + fmt.Sprintf("Confidence: %.0f%%", result.Confidence.Overall*100))
	sb.WriteString(mutedStyle.Render(" ("+result.Confidence.Justification+")") + "\n")

	return sb.String()
}

func fieldsTable(fs schema.FieldSet) string {
	rows := make([][]string, 0, len(schema.FieldOrder))
	for _, field := range schema.FieldOrder {
		value := "Not specified"
		if v, ok := fs.Get(field); ok {
			value = fmt.Sprintf("%v", v)
		}
		rows = append(rows, []string{fieldLabels[field], value})
	}

	t := table.New().
		Headers("Attribute", "Value").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}

func findingsTable(findings []engine.Finding) string {
	rows := make([][]string, 0, len(findings))
	for _, f := range findings {
		rows = append(rows, []string{
			fieldLabels[f.Field],
			statusStyle(f.Status).Render(string(f.Status)),
			f.Expected,
			f.Provided,
			f.Message,
		})
	}

	t := table.New().
		Headers("Field", "Status", "Expected", "Provided", "Comment").
		Rows(rows...).
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})
	return t.String()
}
