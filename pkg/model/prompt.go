package model

import (
	_ "embed"
	"strings"
	"text/template"
)

//go:embed prompts/extraction.md
var extractionPrompt string

var promptTmpl = template.Must(template.New("extraction").Parse(extractionPrompt))

// BuildPrompt renders the field extraction prompt for one design input.
func BuildPrompt(input string) (string, error) {
	var sb strings.Builder
	if err := promptTmpl.Execute(&sb, struct{ Input string }{Input: input}); err != nil {
		return "", err
	}
	return sb.String(), nil
}
