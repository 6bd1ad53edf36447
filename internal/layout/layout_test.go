package layout

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_Metadata(t *testing.T) {
	s := Default()
	assert.Equal(t, "en", s.Lang)
	assert.Equal(t, "Spool", s.Title)
	assert.Equal(t, "", s.Description)
	assert.Equal(t, "/static/globals.css", s.Stylesheet)
}

func TestDefault_FontDeclarations(t *testing.T) {
	s := Default()
	assert.Equal(t, "font-kantumruy-pro font-inter", s.FontClass())
	assert.Equal(t, `--font-kantumruy-pro:"Kantumruy Pro", sans-serif;`, s.Heading.Declaration())
	assert.Equal(t, `--font-inter:"Inter", sans-serif;`, s.Body.Declaration())
}

func TestFontsURL(t *testing.T) {
	u, err := url.Parse(Default().FontsURL())
	require.NoError(t, err)
	assert.Equal(t, "fonts.googleapis.com", u.Host)
	assert.Equal(t, []string{"Kantumruy Pro:wght@500;700", "Inter"}, u.Query()["family"])
	assert.Equal(t, "swap", u.Query().Get("display"))
}

func TestFont_CSSFamilyWithoutFallback(t *testing.T) {
	f := Font{Family: "Mono"}
	assert.Equal(t, `"Mono"`, f.CSSFamily())
	assert.True(t, strings.HasPrefix(Default().Heading.CSSFamily(), `"Kantumruy Pro"`))
}
