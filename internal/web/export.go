package web

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"path/filepath"

	"spool/internal/browser"
	"spool/internal/catalog"
)

// Export writes the site to dir: index.html for the default topic,
// topics/<slug>/index.html for every topic, 404.html and the static assets.
// Existing files are overwritten.
func (s *Server) Export(ctx context.Context, dir string) error {
	pages := map[string]string{
		"index.html": s.catalog.DefaultTopic(),
	}
	for _, name := range s.catalog.Keys() {
		pages[path.Join("topics", catalog.Slug(name), "index.html")] = name
	}

	for rel, topic := range pages {
		if err := ctx.Err(); err != nil {
			return err
		}
		body, err := s.renderPage(ctx, s.tmpl.page, s.pageFor(ctx, topic))
		if err != nil {
			return err
		}
		if err := writeFile(dir, rel, body); err != nil {
			return err
		}
	}

	body, err := s.renderPage(ctx, s.tmpl.notFound, browser.Render(s.catalog, ""))
	if err != nil {
		return err
	}
	if err := writeFile(dir, "404.html", body); err != nil {
		return err
	}

	err = fs.WalkDir(staticRoot, ".", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(staticRoot, p)
		if err != nil {
			return err
		}
		return writeFile(dir, path.Join("static", p), data)
	})
	if err != nil {
		return fmt.Errorf("export static assets: %w", err)
	}

	s.logger.InfoContext(ctx, "site exported", slog.String("dir", dir), slog.Int("topics", s.catalog.Len()))
	return nil
}

func writeFile(dir, rel string, data []byte) error {
	dst := filepath.Join(dir, filepath.FromSlash(rel))
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return fmt.Errorf("create %s: %w", filepath.Dir(dst), err)
	}
	if err := os.WriteFile(dst, data, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", dst, err)
	}
	return nil
}
