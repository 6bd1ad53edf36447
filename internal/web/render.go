package web

import (
	"bytes"
	"context"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"log/slog"
	"strings"

	"spool/internal/browser"
	"spool/internal/layout"
)

//go:embed templates/*.html.tmpl
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// staticRoot holds the embedded files served under /static/.
var staticRoot = mustSub(staticFS, "static")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(err)
	}
	return sub
}

// scriptPath is the page's only script: it follows the topic dropdown.
const scriptPath = "/static/topic-select.js"

// pageData is what the layout and content templates render.
type pageData struct {
	Shell   layout.Shell
	FontCSS template.CSS
	Script  string
	Page    browser.Page
}

// templates holds one parsed set per content slot, each sharing the layout.
type templates struct {
	page     *template.Template
	notFound *template.Template
}

var funcs = template.FuncMap{
	"topicURL": TopicURL,
}

// TopicURL is the path a topic is served at, both live and in an export.
func TopicURL(slug string) string {
	return "/topics/" + slug + "/"
}

func parseTemplates() (*templates, error) {
	base, err := template.New("layout").Funcs(funcs).ParseFS(templateFS, "templates/layout.html.tmpl")
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	withContent := func(name string) (*template.Template, error) {
		t, err := template.Must(base.Clone()).ParseFS(templateFS, "templates/"+name)
		if err != nil {
			return nil, fmt.Errorf("parse %s: %w", name, err)
		}
		return t, nil
	}
	page, err := withContent("page.html.tmpl")
	if err != nil {
		return nil, err
	}
	notFound, err := withContent("notfound.html.tmpl")
	if err != nil {
		return nil, err
	}
	return &templates{page: page, notFound: notFound}, nil
}

// fontCSS scopes each font variable to the class the root element carries.
func fontCSS(shell layout.Shell) template.CSS {
	var b strings.Builder
	for _, f := range shell.Fonts() {
		fmt.Fprintf(&b, ".%s{%s}", f.Class(), f.Declaration())
	}
	return template.CSS(b.String())
}

// renderPage executes t for page inside a render span.
func (s *Server) renderPage(ctx context.Context, t *template.Template, page browser.Page) ([]byte, error) {
	_, done := s.recorder.StartRender(ctx, page.Selected)
	var buf bytes.Buffer
	err := t.ExecuteTemplate(&buf, "layout", pageData{
		Shell:   s.shell,
		FontCSS: fontCSS(s.shell),
		Script:  scriptPath,
		Page:    page,
	})
	done(len(page.Cards))
	if err != nil {
		return nil, fmt.Errorf("render %q: %w", page.Selected, err)
	}
	return buf.Bytes(), nil
}

// pageFor builds the page for topic and records the view. An empty or
// unknown topic shows the catalog default.
func (s *Server) pageFor(ctx context.Context, topic string) browser.Page {
	if topic != "" && !s.catalog.Has(topic) {
		s.logger.DebugContext(ctx, "falling back to default topic", slog.String("topic", topic))
	}
	b := browser.New(s.catalog, browser.WithInitialTopic(topic))
	s.recorder.TopicViewed(ctx, b.Selected())
	return b.Render()
}
