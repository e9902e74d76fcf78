package view

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"vpaas/internal/web/route"
)

//go:embed templates/*.html
var templateFS embed.FS

const (
	appTitle    = "VPAAS"
	submitLabel = "Downscale to 240p"
)

type MenuItem struct {
	Path   string
	Label  string
	Active bool
}

type uploadData struct {
	Action      string
	SubmitLabel string
	Submitted   bool
}

type layoutData struct {
	Title   string
	Menu    []MenuItem
	Content template.HTML
}

type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}
	return &Renderer{tmpl: tmpl}, nil
}

// Render writes the page shell with the menu and the content of r.
// state is only consulted for the Home route.
func (rd *Renderer) Render(w io.Writer, r route.Route, state UploadState) error {
	content, err := rd.content(r, state)
	if err != nil {
		return err
	}

	data := layoutData{
		Title:   title(r),
		Menu:    menu(r),
		Content: content,
	}

	if err := rd.tmpl.ExecuteTemplate(w, "layout", data); err != nil {
		return fmt.Errorf("failed to render layout: %w", err)
	}
	return nil
}

func (rd *Renderer) content(r route.Route, state UploadState) (template.HTML, error) {
	switch r {
	case route.Home:
		data := uploadData{
			Action:      route.Home.Path(),
			SubmitLabel: submitLabel,
		}
		switch state.(type) {
		case Submitted, *Submitted:
			data.Submitted = true
		case Idle, *Idle, nil:
		default:
			return "", fmt.Errorf("unknown upload state %T", state)
		}

		var buf bytes.Buffer
		if err := rd.tmpl.ExecuteTemplate(&buf, "upload", data); err != nil {
			return "", fmt.Errorf("failed to render upload view: %w", err)
		}
		return template.HTML(buf.String()), nil
	case route.Blogs, route.Contact, route.NotFound:
		return "", nil
	}
	return "", fmt.Errorf("unknown route %d", r)
}

func menu(active route.Route) []MenuItem {
	routes := route.All()
	items := make([]MenuItem, 0, len(routes))
	for _, r := range routes {
		items = append(items, MenuItem{
			Path:   r.Path(),
			Label:  r.Label(),
			Active: r == active,
		})
	}
	return items
}

func title(r route.Route) string {
	if r == route.Home {
		return appTitle
	}
	return r.Label() + " | " + appTitle
}
