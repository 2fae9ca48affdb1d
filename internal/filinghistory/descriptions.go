// Package filinghistory resolves templated filing-history description codes
// into display text.
package filinghistory

import (
	_ "embed"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/companieshouse/orders-web/internal/format"
)

//go:embed descriptions.yaml
var descriptionsYAML []byte

type enumeration struct {
	Description map[string]string `yaml:"description"`
}

var templates = mustLoadTemplates()

func mustLoadTemplates() map[string]string {
	var enum enumeration
	if err := yaml.Unmarshal(descriptionsYAML, &enum); err != nil {
		panic(fmt.Sprintf("filinghistory: parse embedded descriptions: %v", err))
	}
	return enum.Description
}

// Describe renders the display text for a description code.
//
// A literal "description" key in values wins verbatim: some legacy filings
// carry their full text pre-rendered, and templating must not touch it.
// Otherwise each {token} in the template is replaced by its value, with
// date-named tokens reformatted to long month form, and asterisk footnote
// markers are stripped. Codes with no template fall back to the code string
// itself.
func Describe(code string, values map[string]any) string {
	if raw, ok := values["description"]; ok {
		if text := strings.TrimSpace(fmt.Sprint(raw)); text != "" {
			return stripAsterisks(text)
		}
	}
	template, ok := templates[code]
	if !ok {
		template = code
	}
	for key, value := range values {
		template = strings.ReplaceAll(template, "{"+key+"}", tokenText(key, value))
	}
	return stripAsterisks(template)
}

func tokenText(key string, value any) string {
	text := fmt.Sprint(value)
	if strings.Contains(strings.ToLower(key), "date") {
		if t, ok := format.ParseDate(text); ok {
			return format.FullDate(t)
		}
	}
	return text
}

func stripAsterisks(s string) string {
	return strings.ReplaceAll(s, "*", "")
}
