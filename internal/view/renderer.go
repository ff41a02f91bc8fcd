package view

import (
	"fmt"
	"html/template"
	"io"

	"records-dashboard/web"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

// Renderer implements echo.Renderer over the embedded HTML templates.
type Renderer struct {
	templates *template.Template
}

// NewRenderer parses the embedded templates with the shared template funcs.
func NewRenderer() (*Renderer, error) {
	templates, err := template.New("").Funcs(template.FuncMap{
		"categoryColor": CategoryColor,
		"money":         formatMoney,
	}).ParseFS(web.TemplatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{templates: templates}, nil
}

// Render writes the named template to w.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func formatMoney(amount decimal.Decimal) string {
	return amount.StringFixed(2)
}
