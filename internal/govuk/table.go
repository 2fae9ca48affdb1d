// Package govuk holds the row/cell structures the GOV.UK table and
// summary-list templates consume. Field nesting (key.text, value.html,
// value.classes) is a fixed contract with the templates and with
// downstream selectors, so it must not be reshaped.
package govuk

// Cell is one side of a summary row. Exactly one of Text or HTML should be
// populated; HTML is inserted unescaped by the templates.
type Cell struct {
	Text    string
	HTML    string
	Classes string
}

// Action renders an optional change/remove link alongside a row.
type Action struct {
	Href               string
	Text               string
	VisuallyHiddenText string
}

// Row is a single key/value entry in a details table.
type Row struct {
	Key     Cell
	Value   Cell
	Actions []Action
}

// Widths applied to detail-table cells throughout the service.
const (
	ClassOneHalf       = "govuk-!-width-one-half"
	ClassOneQuarter    = "govuk-!-width-one-quarter"
	ClassThreeQuarters = "govuk-!-width-three-quarters"
)

// TextRow builds a row with plain text on both sides.
func TextRow(key, value string) Row {
	return Row{
		Key:   Cell{Text: key, Classes: ClassOneHalf},
		Value: Cell{Text: value, Classes: ClassOneHalf},
	}
}

// HTMLRow builds a row whose value carries a pre-escaped HTML fragment.
func HTMLRow(key, html string) Row {
	return Row{
		Key:   Cell{Text: key, Classes: ClassOneHalf},
		Value: Cell{HTML: html, Classes: ClassOneHalf},
	}
}
