// Package layout describes the page chrome every Spool surface wraps its
// content in: document language, metadata, font faces and the stylesheet.
package layout

import (
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// Font is a web font face exposed to content through a CSS custom property.
type Font struct {
	Family   string
	Weights  []int
	Variable string // e.g. "--font-inter"
	Fallback string // generic family, e.g. "sans-serif"
}

// CSSFamily returns the font-family value including the fallback.
func (f Font) CSSFamily() string {
	if f.Fallback == "" {
		return fmt.Sprintf("%q", f.Family)
	}
	return fmt.Sprintf("%q, %s", f.Family, f.Fallback)
}

// Declaration returns the CSS declaration binding the variable to the family.
func (f Font) Declaration() string {
	return f.Variable + ":" + f.CSSFamily() + ";"
}

// Class returns the class name that scopes the font variable.
func (f Font) Class() string {
	return strings.TrimPrefix(f.Variable, "--")
}

// query returns the Google Fonts css2 "family" parameter for the face.
func (f Font) query() string {
	if len(f.Weights) == 0 {
		return f.Family
	}
	ws := make([]string, len(f.Weights))
	for i, w := range f.Weights {
		ws[i] = strconv.Itoa(w)
	}
	return f.Family + ":wght@" + strings.Join(ws, ";")
}

// Shell is the static chrome around a page's single content slot.
type Shell struct {
	Lang        string
	Title       string
	Description string
	Heading     Font
	Body        Font
	Stylesheet  string // path of the global stylesheet
}

// Default returns the shell used by every Spool surface.
func Default() Shell {
	return Shell{
		Lang:        "en",
		Title:       "Spool",
		Description: "",
		Heading: Font{
			Family:   "Kantumruy Pro",
			Weights:  []int{500, 700},
			Variable: "--font-kantumruy-pro",
			Fallback: "sans-serif",
		},
		Body: Font{
			Family:   "Inter",
			Variable: "--font-inter",
			Fallback: "sans-serif",
		},
		Stylesheet: "/static/globals.css",
	}
}

// Fonts returns the heading and body faces, in that order.
func (s Shell) Fonts() []Font {
	return []Font{s.Heading, s.Body}
}

// FontClass returns the space-separated classes for the root element.
func (s Shell) FontClass() string {
	fonts := s.Fonts()
	classes := make([]string, len(fonts))
	for i, f := range fonts {
		classes[i] = f.Class()
	}
	return strings.Join(classes, " ")
}

// FontsURL returns the stylesheet URL that loads every face.
func (s Shell) FontsURL() string {
	v := url.Values{}
	for _, f := range s.Fonts() {
		v.Add("family", f.query())
	}
	v.Set("display", "swap")
	return "https://fonts.googleapis.com/css2?" + v.Encode()
}
