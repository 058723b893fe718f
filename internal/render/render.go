// Package render produces the HTML documents for the setup and invoice
// views. Handlers talk to the Renderer interface; the html/template
// implementation lives in this package too.
package render

import (
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

//go:generate mockgen -source=render.go -destination=renderer_mock.go -package=render
type Renderer interface {
	// Render writes the named view filled with the given values.
	Render(w io.Writer, view string, data map[string]any) error
}

var moneyPrinter = message.NewPrinter(language.English)

// Money formats an amount with grouping and two decimals, e.g. 1234.5
// becomes "1,234.50". Used by the templates and the PDF builder.
func Money(v float64) string {
	return moneyPrinter.Sprintf("%.2f", v)
}
