// Package web renders the dashboard's HTML pages with html/template.
//
// # Templates
//
// Every page is parsed together with layout.html, the page shell carrying the site metadata
// (title, description, Open Graph tags, theme colour). Pages define two blocks:
//   - title: suffix appended to the site title
//   - content: the page body
//
// Templates are embedded into the binary, so the server has no runtime file dependencies.
//
// # Pages
//
//   - landing.html: unauthenticated home page with the "Login with Discord" link
//   - dashboard.html: user header, one card per common guild, client-side logout
//
// Logout is client-side only: the script expires every session cookie and navigates to "/".
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io"

	"github.com/desertthunder/guildboard/internal/models"
	"github.com/desertthunder/guildboard/internal/shared"
)

//go:embed templates/*.html
var templateFiles embed.FS

const (
	pageDashboard = "dashboard.html"
	pageLanding   = "landing.html"
)

// Templates renders pages into the site layout.
type Templates struct {
	site  shared.SiteConfig
	pages map[string]*template.Template
}

// pageData is the root value every template receives.
type pageData struct {
	Site shared.SiteConfig
	Page any
}

// New parses the embedded templates for the given site metadata.
func New(site shared.SiteConfig) (*Templates, error) {
	pages := make(map[string]*template.Template)

	for _, page := range []string{pageDashboard, pageLanding} {
		tmpl, err := template.ParseFS(templateFiles, "templates/layout.html", "templates/"+page)
		if err != nil {
			return nil, fmt.Errorf("failed to parse template %s: %w", page, err)
		}
		pages[page] = tmpl
	}

	return &Templates{site: site, pages: pages}, nil
}

// Dashboard renders the authenticated guild page.
func (t *Templates) Dashboard(w io.Writer, d *models.Dashboard) error {
	return t.render(w, pageDashboard, d)
}

// Landing renders the login page.
func (t *Templates) Landing(w io.Writer, l *models.Landing) error {
	return t.render(w, pageLanding, l)
}

// render executes into a buffer first so a template error never leaves a half-written page.
func (t *Templates) render(w io.Writer, page string, data any) error {
	tmpl, ok := t.pages[page]
	if !ok {
		return fmt.Errorf("%w: unknown page %s", shared.ErrInvalidInput, page)
	}

	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout.html", pageData{Site: t.site, Page: data}); err != nil {
		return fmt.Errorf("failed to render %s: %w", page, err)
	}

	if _, err := buf.WriteTo(w); err != nil {
		return fmt.Errorf("failed to write %s: %w", page, err)
	}
	return nil
}
