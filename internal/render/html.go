package render

import (
	"embed"
	"fmt"
	"html/template"
	"io"
)

//go:embed templates/*.html
var templatesFS embed.FS

// HTML renders views from the embedded template set.
type HTML struct {
	tmpl *template.Template
}

func NewHTML() (*HTML, error) {
	tmpl, err := template.New("").
		Funcs(template.FuncMap{"money": Money}).
		ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("parsing templates: %w", err)
	}

	return &HTML{tmpl: tmpl}, nil
}

func (h *HTML) Render(w io.Writer, view string, data map[string]any) error {
	if err := h.tmpl.ExecuteTemplate(w, view+".html", data); err != nil {
		return fmt.Errorf("rendering %s view: %w", view, err)
	}

	return nil
}
