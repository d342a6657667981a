package handlers

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"net/url"

	"github.com/labstack/echo/v4"
	"github.com/umalmyha/crm-console/internal/model"
)

const (
	landingTemplate   = "landing.html"
	dashboardTemplate = "dashboard.html"
)

//go:embed templates/*.html
var templatesFS embed.FS

type formField struct {
	Name     string
	Label    string
	Value    string
	Required bool
}

type modalData struct {
	Base string
	Kind string
	Form any
}

// TemplateRenderer renders console pages with html/template
type TemplateRenderer struct {
	templates *template.Template
}

// NewTemplateRenderer parses embedded console templates
func NewTemplateRenderer() (*TemplateRenderer, error) {
	funcs := template.FuncMap{
		"field": func(name, label, value string, required bool) formField {
			return formField{Name: name, Label: label, Value: value, Required: required}
		},
		"salutations": func() []string {
			return model.Salutations
		},
		"modal": func(base, kind string, form any) modalData {
			return modalData{Base: base, Kind: kind, Form: form}
		},
		"dashboardURL": dashboardURL,
		"escape":       url.PathEscape,
	}

	t, err := template.New("console").Funcs(funcs).ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates - %w", err)
	}
	return &TemplateRenderer{templates: t}, nil
}

func (r *TemplateRenderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	return r.templates.ExecuteTemplate(w, name, data)
}

func dashboardURL(id model.ID, name string) string {
	u := "/dashboard/" + url.PathEscape(id.String())
	if name != "" {
		u += "?" + url.Values{"customerName": {name}}.Encode()
	}
	return u
}
